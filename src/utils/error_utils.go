// error_utils.go
package utils

import (
	"mergington-activities/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: message,
	})
}

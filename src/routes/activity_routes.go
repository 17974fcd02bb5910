package routes

import (
	"mergington-activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App, h *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", h.GetActivities)
	activityRoutes.Post("/:activityName/signup", h.SignupForActivity)
	activityRoutes.Delete("/:activityName/unregister", h.UnregisterFromActivity)
}

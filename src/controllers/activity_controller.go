package controllers

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/utils"
)

var validate = validator.New()

// ActivityController HTTP handlers ของ /activities
type ActivityController struct {
	svc *activities.Service
	log *zap.Logger
}

func NewActivityController(svc *activities.Service, log *zap.Logger) *ActivityController {
	return &ActivityController{svc: svc, log: log}
}

// GetActivities godoc
// @Summary      List activities
// @Description  All activities keyed by name, with schedule, capacity and current participants
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (h *ActivityController) GetActivities(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListActivities())
}

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Description  Email is read from the JSON body; the email query parameter is accepted for older clients
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityName  path   string                true   "Activity name"
// @Param        body          body   models.SignupRequest  false  "Student email"
// @Param        email         query  string                false  "Student email (legacy)"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/signup [post]
func (h *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	var req models.SignupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, activities.ErrInvalidEmail.Error())
		}
	}

	name, ok := activityNameParam(c)
	if !ok {
		return utils.HandleError(c, fiber.StatusBadRequest, "Activity name contains invalid characters")
	}

	// c.Query ชี้เข้า buffer ของ fasthttp ต้อง copy ก่อนเก็บลง roster
	email := activities.ResolveEmail(req.Email, fiberutils.CopyString(c.Query("email")))
	msg, err := h.svc.Signup(c.UserContext(), name, email)
	if err != nil {
		return h.rosterError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: msg})
}

// UnregisterFromActivity godoc
// @Summary      Unregister from an activity
// @Tags         activities
// @Produce      json
// @Param        activityName  path   string  true  "Activity name"
// @Param        email         query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/unregister [delete]
func (h *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("email") {
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, activities.ErrMissingEmail.Error())
	}

	name, ok := activityNameParam(c)
	if !ok {
		return utils.HandleError(c, fiber.StatusBadRequest, "Activity name contains invalid characters")
	}

	msg, err := h.svc.Unregister(c.UserContext(), name, fiberutils.CopyString(c.Query("email")))
	if err != nil {
		return h.rosterError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: msg})
}

// activityNameParam returns the decoded {activityName} path segment.
func activityNameParam(c *fiber.Ctx) (string, bool) {
	name, err := url.PathUnescape(c.Params("activityName"))
	if err != nil {
		return "", false
	}
	return fiberutils.CopyString(name), true
}

func (h *ActivityController) rosterError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, activities.ErrActivityNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, activities.ErrInvalidEmail):
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, activities.ErrInvalidName),
		errors.Is(err, activities.ErrMissingEmail),
		errors.Is(err, activities.ErrAlreadySignedUp),
		errors.Is(err, activities.ErrNotSignedUp):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	h.log.Error("❌ roster operation failed", zap.String("path", c.Path()), zap.Error(err))
	return utils.HandleError(c, fiber.StatusInternalServerError, "Internal server error")
}

package activity

import (
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ActivityController struct {
	Service ActivityService
}

func NewActivityController(service ActivityService) *ActivityController {
	return &ActivityController{Service: service}
}

// ListActivities godoc
// @Summary List the caller's activity feed
// @Tags activities
// @Produce json
// @Param limit query int false "Max entries (default 100)"
// @Router /api/activities [get]
func (ctrl *ActivityController) ListActivities(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	limit := int64(c.QueryInt("limit", 100))
	entries, err := ctrl.Service.List(c.UserContext(), claims.UserID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load activities"})
	}
	return c.JSON(entries)
}

// CreateActivity godoc
// @Summary Log a manual activity
// @Tags activities
// @Accept json
// @Produce json
// @Router /api/activities [post]
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var req CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := ctrl.Service.Create(c.UserContext(), claims.UserID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

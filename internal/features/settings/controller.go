package settings

import (
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Service SettingsService
}

func NewSettingsController(service SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// GetSettings godoc
// @Summary Get the caller's settings (defaults when never saved)
// @Tags settings
// @Produce json
// @Router /api/settings [get]
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	s, err := ctrl.Service.Get(c.UserContext(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(s)
}

// UpdateSettings godoc
// @Summary Save the caller's settings
// @Tags settings
// @Accept json
// @Produce json
// @Router /api/settings [put]
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s, err := ctrl.Service.Update(c.UserContext(), claims.UserID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s)
}

// DeleteAllData godoc
// @Summary Danger zone: wipe every record the caller owns
// @Tags settings
// @Produce json
// @Router /api/settings/delete-all-data [post]
func (ctrl *SettingsController) DeleteAllData(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	result, err := ctrl.Service.DeleteAllData(c.UserContext(), claims.UserID)
	if err != nil {
		// Partial counts still go back so the user knows what happened.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete all data",
			"deleted": result,
		})
	}
	return c.JSON(fiber.Map{"message": "All data deleted", "deleted": result})
}

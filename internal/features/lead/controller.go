package lead

import (
	"errors"

	common_models "sales-crm/internal/common/models"
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type LeadController struct {
	Service LeadService
}

func NewLeadController(service LeadService) *LeadController {
	return &LeadController{Service: service}
}

// ListLeads godoc
// @Summary List leads with optional search and filters
// @Tags leads
// @Produce json
// @Param q query string false "Substring search over name/email/company"
// @Param status query string false "Status filter, 'all' disables"
// @Param source query string false "Source filter, 'all' disables"
// @Router /api/leads [get]
func (ctrl *LeadController) ListLeads(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	filter := ListFilter{
		Search: c.Query("q"),
		Status: c.Query("status"),
		Source: c.Query("source"),
	}
	records, err := ctrl.Service.List(c.UserContext(), claims.UserID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load leads"})
	}
	return c.JSON(records)
}

// GetLead godoc
// @Summary Get a single lead
// @Tags leads
// @Produce json
// @Router /api/leads/{id} [get]
func (ctrl *LeadController) GetLead(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	record, err := ctrl.Service.Get(c.UserContext(), claims.UserID, c.Params("id"))
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lead not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load lead"})
	}
	return c.JSON(record)
}

// CreateLead godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Router /api/leads [post]
func (ctrl *LeadController) CreateLead(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft LeadDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Create(c.UserContext(), claims.UserID, draft)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateLead godoc
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Router /api/leads/{id} [put]
func (ctrl *LeadController) UpdateLead(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft LeadDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Update(c.UserContext(), claims.UserID, c.Params("id"), draft)
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lead not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Produce json
// @Router /api/leads/{id} [delete]
func (ctrl *LeadController) DeleteLead(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	if err := ctrl.Service.Delete(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lead not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lead"})
	}
	return c.JSON(fiber.Map{"message": "Lead deleted"})
}

package client

import (
	"errors"

	common_models "sales-crm/internal/common/models"
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ClientController struct {
	Service ClientService
}

func NewClientController(service ClientService) *ClientController {
	return &ClientController{Service: service}
}

// ListClients godoc
// @Summary List clients with optional search and status filter
// @Tags clients
// @Produce json
// @Router /api/clients [get]
func (ctrl *ClientController) ListClients(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	filter := ListFilter{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	records, err := ctrl.Service.List(c.UserContext(), claims.UserID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load clients"})
	}
	return c.JSON(records)
}

func (ctrl *ClientController) GetClient(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	record, err := ctrl.Service.Get(c.UserContext(), claims.UserID, c.Params("id"))
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load client"})
	}
	return c.JSON(record)
}

func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft ClientDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Create(c.UserContext(), claims.UserID, draft)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft ClientDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Update(c.UserContext(), claims.UserID, c.Params("id"), draft)
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

func (ctrl *ClientController) DeleteClient(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	if err := ctrl.Service.Delete(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete client"})
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}

package deal

import (
	"errors"

	common_models "sales-crm/internal/common/models"
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DealController struct {
	Service DealService
}

func NewDealController(service DealService) *DealController {
	return &DealController{Service: service}
}

// ListDeals godoc
// @Summary List deals with optional search
// @Tags deals
// @Produce json
// @Router /api/deals [get]
func (ctrl *DealController) ListDeals(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	records, err := ctrl.Service.List(c.UserContext(), claims.UserID, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load deals"})
	}
	return c.JSON(records)
}

// GetBoard godoc
// @Summary Deals grouped into kanban columns by stage
// @Tags deals
// @Produce json
// @Router /api/deals/board [get]
func (ctrl *DealController) GetBoard(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	columns, err := ctrl.Service.Board(c.UserContext(), claims.UserID, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load board"})
	}
	return c.JSON(columns)
}

func (ctrl *DealController) GetDeal(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	record, err := ctrl.Service.Get(c.UserContext(), claims.UserID, c.Params("id"))
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load deal"})
	}
	return c.JSON(record)
}

func (ctrl *DealController) CreateDeal(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft DealDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Create(c.UserContext(), claims.UserID, draft)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *DealController) UpdateDeal(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var draft DealDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.Update(c.UserContext(), claims.UserID, c.Params("id"), draft)
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deal not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

// ChangeStage godoc
// @Summary Move a deal to another stage
// @Tags deals
// @Accept json
// @Produce json
// @Router /api/deals/{id}/stage [patch]
func (ctrl *DealController) ChangeStage(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	var req ChangeStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := ctrl.Service.ChangeStage(c.UserContext(), claims.UserID, c.Params("id"), DealStage(req.Stage))
	if err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deal not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

func (ctrl *DealController) DeleteDeal(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	if err := ctrl.Service.Delete(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		if errors.Is(err, common_models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete deal"})
	}
	return c.JSON(fiber.Map{"message": "Deal deleted"})
}

package export

import (
	"fmt"
	"time"

	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	Service ExportService
}

func NewExportController(service ExportService) *ExportController {
	return &ExportController{Service: service}
}

// ExportJSON godoc
// @Summary Download the account snapshot as JSON
// @Tags export
// @Produce json
// @Router /api/export/json [get]
func (ctrl *ExportController) ExportJSON(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	doc, err := ctrl.Service.BuildDocument(c.UserContext(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", FileName("json", time.Now())))
	return c.JSON(doc)
}

// ExportXLSX godoc
// @Summary Download the account snapshot as an Excel workbook
// @Tags export
// @Router /api/export/xlsx [get]
func (ctrl *ExportController) ExportXLSX(c *fiber.Ctx) error {
	claims := utils.ClaimsFromContext(c.UserContext())

	doc, err := ctrl.Service.BuildDocument(c.UserContext(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}
	payload, err := ctrl.Service.RenderXLSX(doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render workbook"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", FileName("xlsx", time.Now())))
	return c.Send(payload)
}

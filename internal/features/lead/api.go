package lead

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadApi struct {
	Controller *LeadController
	Config     *config.Config
}

func NewLeadApi(controller *LeadController, cfg *config.Config) api.Route {
	return &LeadApi{Controller: controller, Config: cfg}
}

func (a *LeadApi) Setup(app *fiber.App) {
	group := app.Group("/api/leads", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListLeads)
	group.Post("/", a.Controller.CreateLead)
	group.Get("/:id", a.Controller.GetLead)
	group.Put("/:id", a.Controller.UpdateLead)
	group.Delete("/:id", a.Controller.DeleteLead)
}

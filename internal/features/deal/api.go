package deal

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DealApi struct {
	Controller *DealController
	Config     *config.Config
}

func NewDealApi(controller *DealController, cfg *config.Config) api.Route {
	return &DealApi{Controller: controller, Config: cfg}
}

func (a *DealApi) Setup(app *fiber.App) {
	group := app.Group("/api/deals", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListDeals)
	group.Post("/", a.Controller.CreateDeal)
	group.Get("/board", a.Controller.GetBoard)
	group.Get("/:id", a.Controller.GetDeal)
	group.Put("/:id", a.Controller.UpdateDeal)
	group.Patch("/:id/stage", a.Controller.ChangeStage)
	group.Delete("/:id", a.Controller.DeleteDeal)
}

package auth

import (
	"sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	Controller *AuthController
	Config     *config.Config
}

func NewAuthApi(controller *AuthController, cfg *config.Config) api.Route {
	return &AuthApi{Controller: controller, Config: cfg}
}

func (a *AuthApi) Setup(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/register", a.Controller.Register)
	group.Post("/login", a.Controller.Login)
	group.Get("/me", middleware.AuthMiddleware(a.Config.SkipAuth), a.Controller.Me)
}

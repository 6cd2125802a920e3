package main

import (
	"context"
	"fmt"
	"log"

	common_api "sales-crm/internal/common/api"
	"sales-crm/internal/config"
	"sales-crm/internal/database"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/analytics"
	"sales-crm/internal/features/auth"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/dashboard"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/export"
	"sales-crm/internal/features/lead"
	"sales-crm/internal/features/retention"
	"sales-crm/internal/features/settings"
	"sales-crm/internal/features/system"
	"sales-crm/internal/features/user"
	"sales-crm/internal/logger"
	"sales-crm/internal/middleware"
	"sales-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			user.NewUserRepository,
			lead.NewLeadRepository,
			client.NewClientRepository,
			deal.NewDealRepository,
			activity.NewActivityRepository,
			settings.NewSettingsRepository,

			// Activity fan-out
			system.NewHub,
			activity.NewOutbox,

			auth.NewAuthService,
			activity.NewActivityService,
			lead.NewLeadService,
			client.NewClientService,
			deal.NewDealService,
			settings.NewSettingsService,
			analytics.NewAnalyticsService,
			dashboard.NewDashboardService,
			export.NewExportService,
			retention.NewScheduler,

			// Interface Adapters to satisfy Fx
			func(h *system.Hub) activity.Publisher { return h },
			func(s activity.ActivityService) activity.Recorder { return s },

			// Initialize Controller
			auth.NewAuthController,
			activity.NewActivityController,
			lead.NewLeadController,
			client.NewClientController,
			deal.NewDealController,
			settings.NewSettingsController,
			analytics.NewAnalyticsController,
			dashboard.NewDashboardController,
			export.NewExportController,
			system.NewWebSocketController,

			// Initialize API Routes
			AsRoute(system.NewHealthApi),
			AsRoute(auth.NewAuthApi),
			AsRoute(activity.NewActivityApi),
			AsRoute(lead.NewLeadApi),
			AsRoute(client.NewClientApi),
			AsRoute(deal.NewDealApi),
			AsRoute(settings.NewSettingsApi),
			AsRoute(analytics.NewAnalyticsApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(export.NewExportApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) { utils.SetSecret(cfg.JWTSecret) },

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, scheduler *retention.Scheduler) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return scheduler.Start()
					},
					OnStop: func(ctx context.Context) error {
						scheduler.Stop()
						return nil
					},
				})
			},
			func(lc fx.Lifecycle, outbox *activity.Outbox) {
				lc.Append(fx.Hook{
					OnStop: func(ctx context.Context) error {
						outbox.Close()
						return nil
					},
				})
			},
		),
	)

	app.Run()
}

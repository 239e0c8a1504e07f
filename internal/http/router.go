package http

import (
	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/http/handlers"
	"github.com/based-profile/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	lookupHandler *handlers.LookupHandler,
	profileHandler *handlers.ProfileHandler,
	metaHandler *handlers.MetaHandler,
	profileStream *handlers.ProfileStream,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Directory proxy routes
	app.Get("/lookup-by-id", lookupHandler.LookupByID)
	app.Get("/lookup-by-address", lookupHandler.LookupByAddress)
	app.Get("/api/neynar-user-by-fid", lookupHandler.LookupByID)
	app.Get("/api/neynar-user", lookupHandler.LookupByAddress)
	app.Get("/api/config-check", metaHandler.ConfigCheck)

	api := app.Group("/api/v1")

	// Profile
	api.Post("/profile/resolve", profileHandler.Resolve)

	// Meta
	api.Get("/meta/star-levels", metaHandler.GetStarLevels)
	api.Get("/meta/roles", metaHandler.GetRoles)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws/profile", websocket.New(profileStream.HandleWS))
}

// NewApp builds the fiber app with the JSON error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":      err.Error(),
				"request_id": middleware.GetRequestID(c),
			})
		},
	})
}

package routes

import (
	"context"
	"time"

	"comicprices/controllers"
	"comicprices/middleware"
	"comicprices/services"
	"comicprices/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type AppOptions struct {
	Store          *store.Store
	Ping           func(ctx context.Context) error
	Log            *zap.Logger
	RequestTimeout time.Duration
	CORSOrigins    string
}

// NewApp wires middleware, controllers and routes into a fiber app.
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "comicprices",
		ErrorHandler: middleware.ErrorHandler(opts.Log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET, OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(middleware.RequestLogger(opts.Log))
	if opts.RequestTimeout > 0 {
		app.Use(middleware.RequestDeadline(opts.RequestTimeout))
	}

	priceService := services.NewPriceService(opts.Store)

	app.Get("/health", controllers.NewHealthController(opts.Ping).Health)
	RegisterComicRoutes(app, controllers.NewComicController(opts.Store))
	RegisterSellerRoutes(app, controllers.NewSellerController(opts.Store, priceService))
	RegisterPriceRoutes(app, controllers.NewPriceController(opts.Store, priceService))

	return app
}

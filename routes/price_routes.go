package routes

import (
	"comicprices/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterPriceRoutes(app fiber.Router, pc *controllers.PriceController) {
	prices := app.Group("/prices")
	// literal paths first, /:id would swallow them
	prices.Get("/search", pc.SearchByComicName)
	prices.Get("/history/comics/:comicId/sellers/:sellerId", pc.GetPriceHistory)
	prices.Get("/", pc.GetPrices)
	prices.Get("/:id", pc.GetPriceByID)
}

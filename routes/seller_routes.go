package routes

import (
	"comicprices/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterSellerRoutes(app fiber.Router, sc *controllers.SellerController) {
	sellers := app.Group("/sellers")
	sellers.Get("/", sc.GetSellers)
	sellers.Get("/:id/inventory", sc.GetInventory)
	sellers.Get("/:id", sc.GetSellerByID)
}

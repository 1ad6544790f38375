package routes

import (
	"comicprices/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterComicRoutes(app fiber.Router, cc *controllers.ComicController) {
	comics := app.Group("/comics")
	comics.Get("/", cc.GetComics)
	comics.Get("/:id", cc.GetComicByID)
}

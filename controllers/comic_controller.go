package controllers

import (
	"context"

	"comicprices/models"
	"comicprices/store"

	"github.com/gofiber/fiber/v2"
)

type ComicReader interface {
	FindComic(ctx context.Context, id int) (*models.Comic, error)
	ListComics(ctx context.Context, page store.Page, nameContains string) ([]models.Comic, int64, error)
}

type ComicController struct {
	comics ComicReader
}

func NewComicController(comics ComicReader) *ComicController {
	return &ComicController{comics: comics}
}

func (cc *ComicController) GetComicByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comic, err := cc.comics.FindComic(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(comic)
}

// GetComics lists comics, optionally filtered by a case-sensitive ?name substring.
func (cc *ComicController) GetComics(c *fiber.Ctx) error {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		return err
	}

	comics, total, err := cc.comics.ListComics(c.UserContext(), page, c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(PagedResponse{TotalItems: total, PageSize: pageSize, Items: comics})
}

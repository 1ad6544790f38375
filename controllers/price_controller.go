package controllers

import (
	"context"
	"strings"

	"comicprices/models"
	"comicprices/services"
	"comicprices/store"

	"github.com/gofiber/fiber/v2"
)

type PriceLister interface {
	FindPrice(ctx context.Context, id int) (*models.Price, error)
	ListPrices(ctx context.Context, page store.Page) ([]models.Price, int64, error)
}

type PriceController struct {
	prices  PriceLister
	service *services.PriceService
}

func NewPriceController(prices PriceLister, service *services.PriceService) *PriceController {
	return &PriceController{prices: prices, service: service}
}

func (pc *PriceController) GetPriceByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	price, err := pc.prices.FindPrice(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(price)
}

func (pc *PriceController) GetPrices(c *fiber.Ctx) error {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		return err
	}

	prices, total, err := pc.prices.ListPrices(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(PagedResponse{TotalItems: total, PageSize: pageSize, Items: prices})
}

// SearchByComicName handles GET /prices/search?comicName=...
func (pc *PriceController) SearchByComicName(c *fiber.Ctx) error {
	comicName := c.Query("comicName")
	if strings.TrimSpace(comicName) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "comicName is required")
	}

	results, err := pc.service.SearchByComicName(c.UserContext(), comicName)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

func (pc *PriceController) GetPriceHistory(c *fiber.Ctx) error {
	comicID, err := paramID(c, "comicId")
	if err != nil {
		return err
	}
	sellerID, err := paramID(c, "sellerId")
	if err != nil {
		return err
	}

	history, err := pc.service.PriceHistory(c.UserContext(), comicID, sellerID)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

package controllers

import (
	"context"

	"comicprices/models"
	"comicprices/services"
	"comicprices/store"

	"github.com/gofiber/fiber/v2"
)

type SellerReader interface {
	FindSeller(ctx context.Context, id int) (*models.Seller, error)
	ListSellers(ctx context.Context, page store.Page) ([]models.Seller, int64, error)
}

type SellerController struct {
	sellers SellerReader
	prices  *services.PriceService
}

func NewSellerController(sellers SellerReader, prices *services.PriceService) *SellerController {
	return &SellerController{sellers: sellers, prices: prices}
}

func (sc *SellerController) GetSellerByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	seller, err := sc.sellers.FindSeller(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(seller)
}

func (sc *SellerController) GetSellers(c *fiber.Ctx) error {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		return err
	}

	sellers, total, err := sc.sellers.ListSellers(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(PagedResponse{TotalItems: total, PageSize: pageSize, Items: sellers})
}

// GetInventory returns the seller's latest price for each comic they list.
func (sc *SellerController) GetInventory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	inv, err := sc.prices.SellerInventory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

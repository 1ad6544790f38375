package controllers

import (
	"math"
	"strconv"

	"comicprices/store"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	// maxPage keeps (page-1)*pageSize inside int for every allowed pageSize.
	maxPage = math.MaxInt / maxPageSize
)

// PagedResponse is the envelope every list endpoint returns.
type PagedResponse struct {
	TotalItems int64       `json:"totalItems"`
	PageSize   int         `json:"pageSize"`
	Items      interface{} `json:"items"`
}

// parsePaging reads ?page and ?pageSize, clamping page to [1, maxPage] and
// pageSize to [1, maxPageSize].
func parsePaging(c *fiber.Ctx) (store.Page, int, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return store.Page{}, 0, err
	}
	pageSize, err := queryInt(c, "pageSize", defaultPageSize)
	if err != nil {
		return store.Page{}, 0, err
	}

	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return store.Page{Offset: (page - 1) * pageSize, Limit: pageSize}, pageSize, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return v, nil
}

func paramID(c *fiber.Ctx, key string) (int, error) {
	id, err := c.ParamsInt(key)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return id, nil
}

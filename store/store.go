// Package store holds the read-only queries over comics, sellers and prices.
package store

import (
	"context"
	"errors"
	"fmt"

	"comicprices/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup or query yields no rows.
var ErrNotFound = errors.New("not found")

// Page is an offset/limit window over an ordered result.
type Page struct {
	Offset int
	Limit  int
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindComic(ctx context.Context, id int) (*models.Comic, error) {
	var comic models.Comic
	if err := findByID(ctx, s.db, &comic, id); err != nil {
		return nil, fmt.Errorf("comic %d: %w", id, err)
	}
	return &comic, nil
}

func (s *Store) FindSeller(ctx context.Context, id int) (*models.Seller, error) {
	var seller models.Seller
	if err := findByID(ctx, s.db, &seller, id); err != nil {
		return nil, fmt.Errorf("seller %d: %w", id, err)
	}
	return &seller, nil
}

func (s *Store) FindPrice(ctx context.Context, id int) (*models.Price, error) {
	var price models.Price
	if err := findByID(ctx, s.db, &price, id); err != nil {
		return nil, fmt.Errorf("price %d: %w", id, err)
	}
	return &price, nil
}

func findByID(ctx context.Context, db *gorm.DB, dest interface{}, id int) error {
	err := db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ListComics returns one page of comics and the number of comics matching
// nameContains. The match is a case-sensitive substring; "" matches all.
func (s *Store) ListComics(ctx context.Context, page Page, nameContains string) ([]models.Comic, int64, error) {
	comics := []models.Comic{}
	total, err := s.list(ctx, page, &comics, func(q *gorm.DB) *gorm.DB {
		if nameContains == "" {
			return q
		}
		return q.Where(s.containsClause("name"), nameContains)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list comics: %w", err)
	}
	return comics, total, nil
}

func (s *Store) ListSellers(ctx context.Context, page Page) ([]models.Seller, int64, error) {
	sellers := []models.Seller{}
	total, err := s.list(ctx, page, &sellers, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("list sellers: %w", err)
	}
	return sellers, total, nil
}

func (s *Store) ListPrices(ctx context.Context, page Page) ([]models.Price, int64, error) {
	prices := []models.Price{}
	total, err := s.list(ctx, page, &prices, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("list prices: %w", err)
	}
	return prices, total, nil
}

// list counts and pages inside one transaction so both reads see the same rows.
func (s *Store) list(ctx context.Context, page Page, dest interface{}, filter func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(dest)
		if filter != nil {
			query = filter(query)
		}
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return err
		}
		return query.Order("id ASC").Offset(page.Offset).Limit(page.Limit).Find(dest).Error
	})
	return total, err
}

// containsClause builds a case-sensitive substring test for the active dialect.
func (s *Store) containsClause(column string) string {
	if s.db.Dialector.Name() == "mysql" {
		return "INSTR(BINARY " + column + ", ?) > 0"
	}
	return "instr(" + column + ", ?) > 0"
}

// PricesForComicNameLookup returns every price with comic and seller loaded,
// ordered by seller, then amount, then id.
func (s *Store) PricesForComicNameLookup(ctx context.Context) ([]models.PriceWithRefs, error) {
	prices := []models.PriceWithRefs{}
	err := s.db.WithContext(ctx).
		Preload("Comic").
		Preload("Seller").
		Order("seller_id ASC").Order("price ASC").Order("id ASC").
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("prices for name lookup: %w", err)
	}
	return prices, nil
}

// PricesByComicAndSeller returns the price series for one pair, oldest first.
func (s *Store) PricesByComicAndSeller(ctx context.Context, comicID, sellerID int) ([]models.PriceWithRefs, error) {
	prices := []models.PriceWithRefs{}
	err := s.db.WithContext(ctx).
		Preload("Comic").
		Preload("Seller").
		Where("comic_id = ? AND seller_id = ?", comicID, sellerID).
		Order("date_recorded ASC").Order("id ASC").
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("prices for comic %d seller %d: %w", comicID, sellerID, err)
	}
	return prices, nil
}

// PricesForSeller returns all of a seller's prices with the comic loaded,
// grouped by comic and oldest first within a comic. Reducing to the latest
// row per comic is left to the caller.
func (s *Store) PricesForSeller(ctx context.Context, sellerID int) ([]models.PriceWithRefs, error) {
	prices := []models.PriceWithRefs{}
	err := s.db.WithContext(ctx).
		Preload("Comic").
		Where("seller_id = ?", sellerID).
		Order("comic_id ASC").Order("date_recorded ASC").Order("id ASC").
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("prices for seller %d: %w", sellerID, err)
	}
	return prices, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"comicprices/fuzzy"
	"comicprices/models"
	"comicprices/store"

	"github.com/shopspring/decimal"
)

// PriceReader is the slice of the store the price queries read from.
type PriceReader interface {
	PricesForComicNameLookup(ctx context.Context) ([]models.PriceWithRefs, error)
	PricesByComicAndSeller(ctx context.Context, comicID, sellerID int) ([]models.PriceWithRefs, error)
	PricesForSeller(ctx context.Context, sellerID int) ([]models.PriceWithRefs, error)
}

// MatchKind tells how a search result's comic name matched the query.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchFuzzy
)

type SearchResult struct {
	ComicName         *string   `json:"comicName"`
	ComicID           *int      `json:"comicId"`
	SellerName        *string   `json:"sellerName"`
	SellerID          *int      `json:"sellerId"`
	Price             float64   `json:"price"`
	DateRecorded      time.Time `json:"dateRecorded"`
	IsFuzzySearchUsed bool      `json:"isFuzzySearchUsed"`
	FuzzyMatchScore   int       `json:"fuzzyMatchScore"`
}

type InventoryItem struct {
	Comic        *string   `json:"comic"`
	ComicID      int       `json:"comicId"`
	Price        float64   `json:"price"`
	DateRecorded time.Time `json:"dateRecorded"`
}

type Inventory struct {
	TotalComics int             `json:"totalComics"`
	TotalPrice  float64         `json:"totalPrice"`
	Comics      []InventoryItem `json:"comics"`
}

type HistoryPoint struct {
	Price        float64   `json:"price"`
	DateRecorded time.Time `json:"dateRecorded"`
}

type History struct {
	Comic           *models.Comic  `json:"comic"`
	Seller          *models.Seller `json:"seller"`
	PriceDifference float64        `json:"priceDifference"`
	Data            []HistoryPoint `json:"data"`
}

type PriceService struct {
	store PriceReader
}

func NewPriceService(store PriceReader) *PriceService {
	return &PriceService{store: store}
}

type scoredPrice struct {
	models.PriceWithRefs
	score int
}

// SearchByComicName returns, for the most recent day any matching price was
// recorded, the cheapest price per seller, cheapest first. Case-insensitive
// exact name matches win; only when there are none are names scored with
// fuzzy.PartialRatio and kept when above fuzzy.Threshold.
func (s *PriceService) SearchByComicName(ctx context.Context, comicName string) ([]SearchResult, error) {
	prices, err := s.store.PricesForComicNameLookup(ctx)
	if err != nil {
		return nil, err
	}

	kind, matches := matchComicName(prices, comicName)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no prices for comic %q: %w", comicName, store.ErrNotFound)
	}

	latest := latestDay(matches)

	// prices arrive ordered by seller then amount, so the first row kept
	// per seller is its cheapest
	seen := make(map[int]bool)
	results := make([]SearchResult, 0, len(matches))
	for _, p := range matches {
		if !sameDay(p.DateRecorded, latest) || seen[p.SellerID] {
			continue
		}
		seen[p.SellerID] = true
		results = append(results, toSearchResult(p, kind))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})
	return results, nil
}

func matchComicName(prices []models.PriceWithRefs, comicName string) (MatchKind, []scoredPrice) {
	query := strings.ToLower(comicName)

	var direct []scoredPrice
	for _, p := range prices {
		if p.Comic != nil && p.Comic.Name != nil && strings.ToLower(*p.Comic.Name) == query {
			direct = append(direct, scoredPrice{PriceWithRefs: p})
		}
	}
	if len(direct) > 0 {
		return MatchExact, direct
	}

	var fuzzyMatches []scoredPrice
	for _, p := range prices {
		score := fuzzy.PartialRatio(p.ComicName(), query)
		if score > fuzzy.Threshold {
			fuzzyMatches = append(fuzzyMatches, scoredPrice{PriceWithRefs: p, score: score})
		}
	}
	return MatchFuzzy, fuzzyMatches
}

func toSearchResult(p scoredPrice, kind MatchKind) SearchResult {
	r := SearchResult{
		Price:             p.Amount,
		DateRecorded:      p.DateRecorded,
		IsFuzzySearchUsed: kind == MatchFuzzy,
	}
	if kind == MatchFuzzy {
		r.FuzzyMatchScore = p.score
	}
	if p.Comic != nil {
		r.ComicName = p.Comic.Name
		r.ComicID = &p.Comic.ID
	}
	if p.Seller != nil {
		r.SellerName = p.Seller.Name
		r.SellerID = &p.Seller.ID
	}
	return r
}

func latestDay(prices []scoredPrice) time.Time {
	var latest time.Time
	for i, p := range prices {
		d := day(p.DateRecorded)
		if i == 0 || d.After(latest) {
			latest = d
		}
	}
	return latest
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(t, d time.Time) bool {
	return day(t).Equal(d)
}

// SellerInventory lists the latest recorded price of every comic the seller
// has a price for, with the count and sum of those prices.
func (s *PriceService) SellerInventory(ctx context.Context, sellerID int) (*Inventory, error) {
	prices, err := s.store.PricesForSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	latest := latestPerComic(prices)
	if len(latest) == 0 {
		return nil, fmt.Errorf("no inventory for seller %d: %w", sellerID, store.ErrNotFound)
	}

	inv := &Inventory{Comics: make([]InventoryItem, 0, len(latest))}
	total := decimal.Zero
	for _, p := range latest {
		item := InventoryItem{
			ComicID:      p.ComicID,
			Price:        p.Amount,
			DateRecorded: p.DateRecorded,
		}
		if p.Comic != nil {
			item.Comic = p.Comic.Name
		}
		inv.Comics = append(inv.Comics, item)
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	inv.TotalComics = len(inv.Comics)
	inv.TotalPrice = total.InexactFloat64()
	return inv, nil
}

// latestPerComic keeps the row with the greatest DateRecorded per comic,
// breaking ties by the greatest id. Output is ordered by comic id.
func latestPerComic(prices []models.PriceWithRefs) []models.PriceWithRefs {
	byComic := make(map[int]models.PriceWithRefs)
	for _, p := range prices {
		cur, ok := byComic[p.ComicID]
		if !ok || p.DateRecorded.After(cur.DateRecorded) ||
			(p.DateRecorded.Equal(cur.DateRecorded) && p.ID > cur.ID) {
			byComic[p.ComicID] = p
		}
	}

	out := make([]models.PriceWithRefs, 0, len(byComic))
	for _, p := range byComic {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ComicID < out[j].ComicID })
	return out
}

// PriceHistory returns one comic's prices at one seller, oldest first, and
// the change from the first to the last recorded price.
func (s *PriceService) PriceHistory(ctx context.Context, comicID, sellerID int) (*History, error) {
	prices, err := s.store.PricesByComicAndSeller(ctx, comicID, sellerID)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no price history for comic %d at seller %d: %w", comicID, sellerID, store.ErrNotFound)
	}

	first, last := prices[0], prices[len(prices)-1]
	h := &History{
		Comic:  first.Comic,
		Seller: first.Seller,
		PriceDifference: decimal.NewFromFloat(last.Amount).
			Sub(decimal.NewFromFloat(first.Amount)).
			InexactFloat64(),
		Data: make([]HistoryPoint, 0, len(prices)),
	}
	for _, p := range prices {
		h.Data = append(h.Data, HistoryPoint{Price: p.Amount, DateRecorded: p.DateRecorded})
	}
	return h, nil
}

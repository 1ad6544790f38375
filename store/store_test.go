package store_test

import (
	"context"
	"errors"
	"testing"

	"comicprices/models"
	"comicprices/store"
	"comicprices/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *store.Store {
	db := storetest.NewDB(t)
	storetest.Seed(t, db)
	return store.New(db)
}

func TestFindByID(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	comic, err := s.FindComic(ctx, storetest.Batman1)
	require.NoError(t, err)
	assert.Equal(t, "Batman #1", *comic.Name)

	seller, err := s.FindSeller(ctx, storetest.SellerTwo)
	require.NoError(t, err)
	assert.Equal(t, "S2", *seller.Name)

	price, err := s.FindPrice(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, price.Amount)
	assert.True(t, price.DateRecorded.Equal(storetest.Day(2024, 2, 1)))

	_, err = s.FindComic(ctx, 99)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = s.FindSeller(ctx, 99)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = s.FindPrice(ctx, 99)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestListComics(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	comics, total, err := s.ListComics(ctx, store.Page{Offset: 0, Limit: 2}, "Spider")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, comics, 2)
	assert.Equal(t, storetest.SpiderMan1, comics[0].ID)
	assert.Equal(t, storetest.SpiderMan2, comics[1].ID)

	comics, total, err = s.ListComics(ctx, store.Page{Offset: 0, Limit: 50}, "spider")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total, "name filter is case-sensitive")
	assert.Empty(t, comics)

	comics, total, err = s.ListComics(ctx, store.Page{Offset: 2, Limit: 50}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, comics, 1)
	assert.Equal(t, storetest.Batman1, comics[0].ID)
}

func TestListSellersAndPrices(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	sellers, total, err := s.ListSellers(ctx, store.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, sellers, 1)
	assert.Equal(t, storetest.SellerTwo, sellers[0].ID)

	prices, total, err := s.ListPrices(ctx, store.Page{Offset: 0, Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, prices, 3)

	prices, total, err = s.ListPrices(ctx, store.Page{Offset: 10, Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.NotNil(t, prices)
	assert.Empty(t, prices)
}

func TestPricesForComicNameLookupOrder(t *testing.T) {
	s := newSeededStore(t)

	prices, err := s.PricesForComicNameLookup(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 5)

	var ids []int
	for _, p := range prices {
		ids = append(ids, p.ID)
		require.NotNil(t, p.Comic)
		require.NotNil(t, p.Seller)
		assert.Equal(t, p.ComicID, p.Comic.ID)
		assert.Equal(t, p.SellerID, p.Seller.ID)
	}
	// seller 1: 9.0, 10.0, 20.0; seller 2: 5.0, 12.0
	assert.Equal(t, []int{2, 1, 4, 5, 3}, ids)
}

func TestPricesByComicAndSeller(t *testing.T) {
	s := newSeededStore(t)

	prices, err := s.PricesByComicAndSeller(context.Background(), storetest.SpiderMan1, storetest.SellerOne)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, 10.0, prices[0].Amount)
	assert.Equal(t, 9.0, prices[1].Amount)
	assert.Equal(t, "Spider-Man #1", prices[0].ComicName())
	assert.Equal(t, "S1", *prices[0].SellerName())

	prices, err = s.PricesByComicAndSeller(context.Background(), storetest.Batman1, storetest.SellerOne)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestPricesForSeller(t *testing.T) {
	s := newSeededStore(t)

	prices, err := s.PricesForSeller(context.Background(), storetest.SellerOne)
	require.NoError(t, err)
	require.Len(t, prices, 3)
	for _, p := range prices {
		assert.Equal(t, storetest.SellerOne, p.SellerID)
		require.NotNil(t, p.Comic)
		assert.Nil(t, p.Seller, "seller is not loaded for inventory")
	}
}

func TestDanglingReferencesLoadAsNil(t *testing.T) {
	db := storetest.NewDB(t)
	storetest.Insert(t, db, &[]models.Price{
		{ID: 1, ComicID: 404, SellerID: 405, Amount: 1.5, DateRecorded: storetest.Day(2024, 3, 1)},
	})
	s := store.New(db)

	prices, err := s.PricesForComicNameLookup(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Nil(t, prices[0].Comic)
	assert.Nil(t, prices[0].Seller)
	assert.Equal(t, "", prices[0].ComicName())
	assert.Nil(t, prices[0].SellerName())
}

func TestCancelledContext(t *testing.T) {
	s := newSeededStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.PricesForComicNameLookup(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// Package storetest opens throwaway sqlite databases seeded with a small
// comic catalog for tests.
package storetest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"comicprices/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Ids used by Seed.
const (
	SpiderMan1 = 1
	SpiderMan2 = 2
	Batman1    = 3

	SellerOne = 1
	SellerTwo = 2
)

// NewDB returns an empty, migrated in-memory database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_", "?", "_", "%", "_", "&", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Name(s string) *string { return &s }

// Seed inserts three comics, two sellers and five prices:
//
//	Spider-Man #1 / S1  10.0  2024-01-01
//	Spider-Man #1 / S1   9.0  2024-02-01
//	Spider-Man #1 / S2  12.0  2024-02-01
//	Spider-Man #2 / S1  20.0  2024-02-01
//	Batman #1     / S2   5.0  2024-01-15
func Seed(t testing.TB, db *gorm.DB) {
	t.Helper()

	comics := []models.Comic{
		{ID: SpiderMan1, Name: Name("Spider-Man #1"), Owned: true},
		{ID: SpiderMan2, Name: Name("Spider-Man #2")},
		{ID: Batman1, Name: Name("Batman #1")},
	}
	sellers := []models.Seller{
		{ID: SellerOne, Name: Name("S1")},
		{ID: SellerTwo, Name: Name("S2")},
	}
	prices := []models.Price{
		{ID: 1, ComicID: SpiderMan1, SellerID: SellerOne, Amount: 10.0, DateRecorded: Day(2024, 1, 1)},
		{ID: 2, ComicID: SpiderMan1, SellerID: SellerOne, Amount: 9.0, DateRecorded: Day(2024, 2, 1)},
		{ID: 3, ComicID: SpiderMan1, SellerID: SellerTwo, Amount: 12.0, DateRecorded: Day(2024, 2, 1)},
		{ID: 4, ComicID: SpiderMan2, SellerID: SellerOne, Amount: 20.0, DateRecorded: Day(2024, 2, 1)},
		{ID: 5, ComicID: Batman1, SellerID: SellerTwo, Amount: 5.0, DateRecorded: Day(2024, 1, 15)},
	}

	Insert(t, db, &comics, &sellers, &prices)
}

// Insert creates each of rows in order, failing the test on error.
func Insert(t testing.TB, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("insert %T: %v", r, err)
		}
	}
}

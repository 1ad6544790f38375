package models

import (
	"time"

	"gorm.io/gorm"
)

// Price is one dated observation of a seller's asking amount for a comic.
type Price struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	ComicID      int       `gorm:"column:comic_id;index" json:"comicId"`
	SellerID     int       `gorm:"column:seller_id;index" json:"sellerId"`
	Amount       float64   `gorm:"column:price" json:"amount"`
	Description  *string   `gorm:"column:description" json:"description"`
	DateRecorded time.Time `gorm:"column:date_recorded;index" json:"dateRecorded"`
}

func (Price) TableName() string { return "prices" }

// PriceWithRefs is a price row with its comic and seller eagerly loaded.
// A nil Comic or Seller means the foreign key points at a missing row.
type PriceWithRefs struct {
	Price
	Comic  *Comic  `gorm:"foreignKey:ComicID;references:ID" json:"comic"`
	Seller *Seller `gorm:"foreignKey:SellerID;references:ID" json:"seller"`
}

// ComicName returns the comic's name, or "" when the comic or its name is missing.
func (p PriceWithRefs) ComicName() string {
	if p.Comic == nil || p.Comic.Name == nil {
		return ""
	}
	return *p.Comic.Name
}

func (p PriceWithRefs) SellerName() *string {
	if p.Seller == nil {
		return nil
	}
	return p.Seller.Name
}

func MigratePrice(db *gorm.DB) error {
	return db.AutoMigrate(&Price{})
}

// MigrateAll creates the comics, sellers and prices tables.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateComic(db); err != nil {
		return err
	}
	if err := MigrateSeller(db); err != nil {
		return err
	}
	return MigratePrice(db)
}

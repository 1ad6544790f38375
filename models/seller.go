package models

import "gorm.io/gorm"

type Seller struct {
	ID   int     `gorm:"primaryKey;column:id" json:"id"`
	Name *string `gorm:"column:name" json:"name"`
}

func (Seller) TableName() string { return "sellers" }

func MigrateSeller(db *gorm.DB) error {
	if db.Migrator().HasTable(&Seller{}) {
		return nil
	}
	return db.AutoMigrate(&Seller{})
}

package models

import (
	"gorm.io/gorm"
)

// Comic is one catalog entry (a single issue).
type Comic struct {
	ID    int     `gorm:"primaryKey;column:id" json:"id"`
	Name  *string `gorm:"column:name" json:"name"`
	Owned bool    `gorm:"column:owned" json:"owned"`
}

func (Comic) TableName() string { return "comics" }

// MigrateComic creates the comics table if it is missing
func MigrateComic(db *gorm.DB) error {
	if db.Migrator().HasTable(&Comic{}) {
		return nil
	}
	return db.AutoMigrate(&Comic{})
}

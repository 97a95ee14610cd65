package store

import (
	"github.com/laasya2505/kuber-ai-assignment/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func InitDB(path string) (*gorm.DB, error) {
	d, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := d.AutoMigrate(&models.User{}, &models.Transaction{}, &models.ChatSession{}, &models.GoldPrice{}); err != nil {
		return nil, err
	}
	return d, nil
}

func SetDB(d *gorm.DB) { db = d }

func GetDB() *gorm.DB { return db }

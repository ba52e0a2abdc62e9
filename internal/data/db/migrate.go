package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.ContactMessage{},
		&domain.PredictionRecord{},
	)
}

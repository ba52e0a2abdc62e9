package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/data/repos"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

type Repos struct {
	ContactMessage   repos.ContactMessageRepo
	PredictionRecord repos.PredictionRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		ContactMessage:   repos.NewContactMessageRepo(db, log),
		PredictionRecord: repos.NewPredictionRecordRepo(db, log),
	}
}

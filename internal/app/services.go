package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/data/cache"
	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/observability"
	"github.com/yungbote/agrinet/internal/platform/logger"
	"github.com/yungbote/agrinet/internal/services"
)

type Services struct {
	Diagnosis *diagnosis.Service
	Contact   services.ContactService
	History   *services.PredictionHistory
}

func wireServices(
	db *gorm.DB,
	log *logger.Logger,
	cfg *config.Config,
	reposet Repos,
	pc *cache.PredictionCache,
	metrics *observability.Metrics,
) Services {
	log.Info("Wiring services...")

	// A model that fails to load leaves the service up; /predict then answers 503.
	eng, err := diagnosis.NewEngine(cfg.Model)
	if err != nil {
		log.Error("Model load failed, predictions disabled", "engine", cfg.Model.Engine, "error", err)
		eng = nil
	}

	history := services.NewPredictionHistory(db, reposet.PredictionRecord)
	opts := []diagnosis.Option{
		diagnosis.WithInputSize(cfg.Model.InputSize),
		diagnosis.WithRecorder(history),
	}
	if pc != nil {
		opts = append(opts, diagnosis.WithCache(pc))
	}
	var contactObserver services.ContactObserver
	if metrics != nil {
		opts = append(opts, diagnosis.WithObserver(metrics))
		contactObserver = metrics
	}

	return Services{
		Diagnosis: diagnosis.NewService(log, eng, opts...),
		Contact:   services.NewContactService(db, log, reposet.ContactMessage, contactObserver),
		History:   history,
	}
}

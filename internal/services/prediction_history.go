package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/data/repos"
	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/domain"
)

// PredictionHistory persists served predictions. It satisfies diagnosis.Recorder.
type PredictionHistory struct {
	db   *gorm.DB
	repo repos.PredictionRecordRepo
}

func NewPredictionHistory(db *gorm.DB, repo repos.PredictionRecordRepo) *PredictionHistory {
	return &PredictionHistory{db: db, repo: repo}
}

func (h *PredictionHistory) RecordPrediction(ctx context.Context, digest string, filename string, p diagnosis.Prediction, cached bool) error {
	_, err := h.repo.Create(ctx, h.db, &domain.PredictionRecord{
		ImageSHA256: digest,
		Filename:    truncate(filename, 255),
		Class:       p.Class,
		Confidence:  p.Confidence,
		Cached:      cached,
	})
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/domain"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

type ContactMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.ContactMessage, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type contactMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactMessageRepo(db *gorm.DB, baseLog *logger.Logger) ContactMessageRepo {
	return &contactMessageRepo{db: db, log: baseLog.With("repo", "ContactMessageRepo")}
}

func (r *contactMessageRepo) Create(ctx context.Context, tx *gorm.DB, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *contactMessageRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.ContactMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var results []*domain.ContactMessage
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactMessageRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	if err := transaction.WithContext(ctx).Model(&domain.ContactMessage{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

type PredictionRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *domain.PredictionRecord) (*domain.PredictionRecord, error)
	ListByDigest(ctx context.Context, tx *gorm.DB, digest string) ([]*domain.PredictionRecord, error)
	CountByClass(ctx context.Context, tx *gorm.DB) (map[string]int64, error)
}

type predictionRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPredictionRecordRepo(db *gorm.DB, baseLog *logger.Logger) PredictionRecordRepo {
	return &predictionRecordRepo{db: db, log: baseLog.With("repo", "PredictionRecordRepo")}
}

func (r *predictionRecordRepo) Create(ctx context.Context, tx *gorm.DB, rec *domain.PredictionRecord) (*domain.PredictionRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *predictionRecordRepo) ListByDigest(ctx context.Context, tx *gorm.DB, digest string) ([]*domain.PredictionRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.PredictionRecord
	if digest == "" {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("image_sha256 = ?", digest).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *predictionRecordRepo) CountByClass(ctx context.Context, tx *gorm.DB) (map[string]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []struct {
		Class string
		N     int64
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.PredictionRecord{}).
		Select("class, COUNT(*) AS n").
		Group("class").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Class] = row.N
	}
	return out, nil
}

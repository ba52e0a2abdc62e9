package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionRecord is one served prediction. The image itself is never stored, only its digest.
type PredictionRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageSHA256 string    `gorm:"column:image_sha256;size:64;not null;index" json:"image_sha256"`
	Filename    string    `gorm:"column:filename;size:255" json:"filename,omitempty"`
	Class       string    `gorm:"column:class;size:64;not null;index" json:"class"`
	Confidence  float64   `gorm:"column:confidence;not null" json:"confidence"`
	Cached      bool      `gorm:"column:cached;not null;default:false" json:"cached"`
	CreatedAt   time.Time `gorm:"not null;default:current_timestamp;index" json:"created_at"`
}

func (PredictionRecord) TableName() string { return "prediction_record" }

func (r *PredictionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

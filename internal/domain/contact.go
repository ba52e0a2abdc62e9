package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:120;not null" json:"name"`
	Email     string    `gorm:"column:email;size:254;not null;index" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	RequestID string    `gorm:"column:request_id;size:64" json:"request_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_message" }

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

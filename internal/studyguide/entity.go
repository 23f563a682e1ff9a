package studyguide

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudyGuide struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CertificationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"certification_id"`
	Topic           string         `gorm:"type:text;not null" json:"topic"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	FocusAreas      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"focus_areas"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type GenerateGuideDTO struct {
	CertificationID uuid.UUID   `json:"certification_id"`
	CategoryIDs     []uuid.UUID `json:"category_ids"`
	Topic           string      `json:"topic"`
}

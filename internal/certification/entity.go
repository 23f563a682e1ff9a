package certification

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Vendor      string    `gorm:"type:text;not null" json:"vendor"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Categories []Category `gorm:"foreignKey:CertificationID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

type Category struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CertificationID uuid.UUID `gorm:"type:uuid;not null;index" json:"certification_id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	ExamWeight      int       `gorm:"not null;default:0" json:"exam_weight"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

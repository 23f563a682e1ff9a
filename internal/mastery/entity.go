package mastery

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MasteryRecord is the permanent rolling aggregate for one (user, category,
// subcategory) topic. Counters only ever grow; the rolling average is derived
// from them and recomputed on every mutation, never stored on its own.
type MasteryRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mastery_key" json:"user_id"`
	CategoryID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mastery_key" json:"category_id"`
	SubcategoryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mastery_key" json:"subcategory_id"`
	TotalAnswers   int       `gorm:"not null;default:0" json:"total_answers"`
	CorrectAnswers int       `gorm:"not null;default:0" json:"correct_answers"`
	RollingAverage int       `gorm:"not null;default:0" json:"rolling_average"`
	LastUpdated    time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// Recompute derives RollingAverage from the counters. Zero answers means 0,
// not a division error.
func (m *MasteryRecord) Recompute() {
	if m.TotalAnswers == 0 {
		m.RollingAverage = 0
		return
	}
	m.RollingAverage = int(math.Round(100 * float64(m.CorrectAnswers) / float64(m.TotalAnswers)))
}

package progress

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnswerOutcome is one graded question attempt as fed to the adaptive
// controller, in submission order.
type AnswerOutcome struct {
	QuestionID    uuid.UUID `json:"question_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	IsCorrect     bool      `json:"is_correct"`
}

// CategoryProgress is the per-(user, category) adaptation state. The streak
// counters and weak-subcategory set describe only the most recent submission
// window; they are replaced wholesale on every adaptive update.
type CategoryProgress struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_key" json:"user_id"`
	CategoryID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_key" json:"category_id"`
	ConsecutiveCorrect int            `gorm:"not null;default:0" json:"consecutive_correct"`
	ConsecutiveWrong   int            `gorm:"not null;default:0" json:"consecutive_wrong"`
	AdaptiveDifficulty int            `gorm:"not null;default:1" json:"adaptive_difficulty"`
	WeakSubcategories  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"weak_subcategories"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *CategoryProgress) SetWeakSubcategories(ids []uuid.UUID) error {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	p.WeakSubcategories = datatypes.JSON(raw)
	return nil
}

func (p *CategoryProgress) WeakSubcategoryIDs() ([]uuid.UUID, error) {
	if len(p.WeakSubcategories) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(p.WeakSubcategories, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

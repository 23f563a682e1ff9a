package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CertificationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"certification_id"`
	Mode            QuizMode   `gorm:"type:text;not null;default:'STANDARD'" json:"mode"`
	TotalQuestions  int        `gorm:"not null;default:0" json:"total_questions"`
	CorrectCount    int        `gorm:"not null;default:0" json:"correct_count"`
	Score           int        `gorm:"not null;default:0" json:"score"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	CategoryID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	SubcategoryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"subcategory_id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer,omitempty"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty    int            `gorm:"not null;default:1" json:"difficulty"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// QuizAnswer is one graded attempt, kept for history and review sessions.
type QuizAnswer struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;not null" json:"subcategory_id"`
	Selected      string    `gorm:"type:text;not null" json:"selected"`
	IsCorrect     bool      `gorm:"not null" json:"is_correct"`
	AnsweredAt    time.Time `gorm:"autoCreateTime" json:"answered_at"`
}

package quiz

import (
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionInput struct {
	CategoryID    uuid.UUID      `json:"category_id"`
	SubcategoryID uuid.UUID      `json:"subcategory_id"`
	Content       string         `json:"content"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"correct_answer"`
	Explanation   *string        `json:"explanation,omitempty"`
	Difficulty    int            `json:"difficulty"`
}

// CreateQuizDTO carries a pool of candidate questions. In ADAPTIVE mode the
// engine decides how many of them make it into the session and prefers
// difficulties close to the user's current level.
type CreateQuizDTO struct {
	CertificationID uuid.UUID       `json:"certification_id"`
	Mode            QuizMode        `json:"mode"`
	BaseCount       int             `json:"base_count"`
	Questions       []QuestionInput `json:"questions"`
}

type SubmittedAnswer struct {
	QuestionID uuid.UUID `json:"question_id"`
	Selected   string    `json:"selected"`
}

type SubmitQuizDTO struct {
	Answers []SubmittedAnswer `json:"answers"`
}

// SubmissionResult is everything the engine produced for one submission.
type SubmissionResult struct {
	QuizID         uuid.UUID                    `json:"quiz_id"`
	Score          int                          `json:"score"`
	CorrectCount   int                          `json:"correct_count"`
	TotalQuestions int                          `json:"total_questions"`
	Mastery        []*mastery.MasteryRecord     `json:"mastery"`
	Progress       []*progress.CategoryProgress `json:"progress"`
	NewBadges      []*gamification.UserBadge    `json:"new_badges"`
	Stats          *gamification.GameStats      `json:"stats"`
}

package gamification

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizSummary is the slice of the quizzes table the evaluator needs. It is
// scanned directly so this package does not depend on the quiz package,
// which itself drives the evaluator.
type QuizSummary struct {
	Score int
	Mode  string
}

type Repository interface {
	ListBadges() ([]*Badge, error)
	UpsertBadge(b *Badge) error
	ListUserBadges(userID uuid.UUID) ([]*UserBadge, error)
	CreateUserBadge(ub *UserBadge) error
	MarkNotified(userID uuid.UUID) error

	GetStats(userID uuid.UUID) (*GameStats, error)
	SaveStats(stats *GameStats) error

	ListQuizSummaries(userID uuid.UUID) ([]QuizSummary, error)
	ListCompletionDates(userID uuid.UUID) ([]time.Time, error)
	CountStudyGuides(userID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListBadges() ([]*Badge, error) {
	var badges []*Badge
	if err := r.db.Order("key ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *repository) UpsertBadge(b *Badge) error {
	var existing Badge
	err := r.db.First(&existing, "key = ?", b.Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(b).Error
	}
	if err != nil {
		return err
	}
	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	return r.db.Save(b).Error
}

func (r *repository) ListUserBadges(userID uuid.UUID) ([]*UserBadge, error) {
	var list []*UserBadge
	if err := r.db.
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) CreateUserBadge(ub *UserBadge) error {
	return r.db.Create(ub).Error
}

func (r *repository) MarkNotified(userID uuid.UUID) error {
	return r.db.
		Model(&UserBadge{}).
		Where("user_id = ? AND is_notified = ?", userID, false).
		Update("is_notified", true).Error
}

func (r *repository) GetStats(userID uuid.UUID) (*GameStats, error) {
	var stats GameStats
	if err := r.db.First(&stats, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *repository) SaveStats(stats *GameStats) error {
	return r.db.Save(stats).Error
}

func (r *repository) ListQuizSummaries(userID uuid.UUID) ([]QuizSummary, error) {
	var summaries []QuizSummary
	if err := r.db.
		Table("quizzes").
		Select("score, mode").
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) ListCompletionDates(userID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.
		Table("quizzes").
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Order("completed_at DESC").
		Pluck("completed_at", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *repository) CountStudyGuides(userID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.
		Table("study_guides").
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

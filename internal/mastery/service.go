package mastery

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/google/uuid"
)

var ErrInvalidCounts = errors.New("correct count must be between 0 and total, total at least 1")

type Service interface {
	ApplyBulk(ctx context.Context, userID, categoryID, subcategoryID uuid.UUID, correct, total int) (*MasteryRecord, error)
	ApplySingle(ctx context.Context, userID, categoryID, subcategoryID uuid.UUID, isCorrect bool) (*MasteryRecord, error)
	CategoryMastery(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
	OverallMastery(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*MasteryRecord, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ApplyBulk folds a batch of graded answers for one topic into its permanent
// counters. Validation happens before any read or write: an invalid batch
// leaves the record untouched.
func (s *service) ApplyBulk(ctx context.Context, userID, categoryID, subcategoryID uuid.UUID, correct, total int) (*MasteryRecord, error) {
	log := config.WithContext(ctx)

	if total < 1 || correct < 0 || correct > total {
		return nil, ErrInvalidCounts
	}

	record, err := s.repo.FindByKey(userID, categoryID, subcategoryID)
	if err != nil {
		log.WithError(err).Error("Failed to load mastery record")
		return nil, err
	}

	if record == nil {
		record = &MasteryRecord{
			ID:             uuid.New(),
			UserID:         userID,
			CategoryID:     categoryID,
			SubcategoryID:  subcategoryID,
			TotalAnswers:   total,
			CorrectAnswers: correct,
			LastUpdated:    time.Now(),
		}
		record.Recompute()

		if err := s.repo.Create(record); err != nil {
			log.WithError(err).Error("Failed to create mastery record")
			return nil, err
		}
		return record, nil
	}

	record.TotalAnswers += total
	record.CorrectAnswers += correct
	record.LastUpdated = time.Now()
	record.Recompute()

	if err := s.repo.Update(record); err != nil {
		log.WithError(err).Error("Failed to update mastery record")
		return nil, err
	}
	return record, nil
}

func (s *service) ApplySingle(ctx context.Context, userID, categoryID, subcategoryID uuid.UUID, isCorrect bool) (*MasteryRecord, error) {
	correct := 0
	if isCorrect {
		correct = 1
	}
	return s.ApplyBulk(ctx, userID, categoryID, subcategoryID, correct, 1)
}

func (s *service) CategoryMastery(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	log := config.WithContext(ctx)

	records, err := s.repo.ListByUserAndCategory(userID, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list mastery records for category")
		return 0, err
	}
	return weightedAverage(records), nil
}

func (s *service) OverallMastery(ctx context.Context, userID uuid.UUID) (int, error) {
	log := config.WithContext(ctx)

	records, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list mastery records for user")
		return 0, err
	}
	return weightedAverage(records), nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*MasteryRecord, error) {
	log := config.WithContext(ctx)

	records, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list mastery records")
		return nil, err
	}
	return records, nil
}

// weightedAverage averages rolling averages weighted by answer volume, so a
// topic answered 200 times outweighs one answered twice. No records means 0.
func weightedAverage(records []*MasteryRecord) int {
	var numerator, denominator int
	for _, record := range records {
		numerator += record.RollingAverage * record.TotalAnswers
		denominator += record.TotalAnswers
	}
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator)))
}

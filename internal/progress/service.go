package progress

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/google/uuid"
)

var (
	ErrEmptyOutcomes   = errors.New("outcome batch is empty")
	ErrInvalidBaseSize = errors.New("base question count must be at least 1")
)

type Service interface {
	UpdateProgress(ctx context.Context, userID, categoryID uuid.UUID, outcomes []AnswerOutcome) (*CategoryProgress, error)
	AdaptiveQuestionCount(ctx context.Context, userID uuid.UUID, baseCount int, categoryIDs []uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CategoryProgress, error)
}

type service struct {
	repo   Repository
	policy AdaptivePolicy
}

func NewService(repo Repository, policy AdaptivePolicy) Service {
	return &service{repo: repo, policy: policy}
}

// UpdateProgress recomputes the adaptation state for one category from a
// submission batch. Only the trailing single-signed run of the last
// WindowSize outcomes counts as a streak, so one wrong answer resets a
// correct run and vice versa; at most one difficulty transition fires per
// update.
func (s *service) UpdateProgress(ctx context.Context, userID, categoryID uuid.UUID, outcomes []AnswerOutcome) (*CategoryProgress, error) {
	log := config.WithContext(ctx)

	if len(outcomes) == 0 {
		return nil, ErrEmptyOutcomes
	}

	p, err := s.repo.FindByKey(userID, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to load category progress")
		return nil, err
	}
	if p == nil {
		p = &CategoryProgress{
			ID:                 uuid.New(),
			UserID:             userID,
			CategoryID:         categoryID,
			AdaptiveDifficulty: s.policy.MinDifficulty,
		}
	}

	window := outcomes
	if len(window) > s.policy.WindowSize {
		window = window[len(window)-s.policy.WindowSize:]
	}

	runLength, runCorrect := trailingRun(window)
	if runCorrect {
		p.ConsecutiveCorrect = runLength
		p.ConsecutiveWrong = 0
	} else {
		p.ConsecutiveWrong = runLength
		p.ConsecutiveCorrect = 0
	}

	switch {
	case p.ConsecutiveCorrect >= s.policy.RaiseStreak:
		if p.AdaptiveDifficulty < s.policy.MaxDifficulty {
			p.AdaptiveDifficulty++
		}
	case p.ConsecutiveWrong >= s.policy.LowerStreak:
		if p.AdaptiveDifficulty > s.policy.MinDifficulty {
			p.AdaptiveDifficulty--
		}
	}

	weak := weakSubcategories(window, s.policy.WeakMinAnswers, s.policy.WeakAccuracy)
	if err := p.SetWeakSubcategories(weak); err != nil {
		log.WithError(err).Error("Failed to encode weak subcategories")
		return nil, err
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Save(p); err != nil {
		log.WithError(err).Error("Failed to save category progress")
		return nil, err
	}
	return p, nil
}

// AdaptiveQuestionCount sizes the next quiz. Users with no adaptation history
// get the base count untouched; struggling users get up to twice as many
// practice questions.
func (s *service) AdaptiveQuestionCount(ctx context.Context, userID uuid.UUID, baseCount int, categoryIDs []uuid.UUID) (int, error) {
	log := config.WithContext(ctx)

	if baseCount < 1 {
		return 0, ErrInvalidBaseSize
	}

	list, err := s.repo.ListByUserAndCategories(userID, categoryIDs)
	if err != nil {
		log.WithError(err).Error("Failed to load progress for adaptive sizing")
		return 0, err
	}
	if len(list) == 0 {
		return baseCount, nil
	}

	difficultySum := 0
	maxConsecutiveWrong := 0
	for _, p := range list {
		difficultySum += p.AdaptiveDifficulty
		if p.ConsecutiveWrong > maxConsecutiveWrong {
			maxConsecutiveWrong = p.ConsecutiveWrong
		}
	}
	avgDifficulty := float64(difficultySum) / float64(len(list))

	multiplier := 1.0
	if maxConsecutiveWrong >= s.policy.LowerStreak {
		multiplier += s.policy.WrongStreakBonus
	}
	if avgDifficulty <= float64(s.policy.LowDifficultyMax) {
		multiplier += s.policy.LowDifficultyBonus
	}

	count := int(math.Ceil(float64(baseCount) * multiplier))
	if limit := int(float64(baseCount) * s.policy.MaxSizeFactor); count > limit {
		count = limit
	}
	return count, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CategoryProgress, error) {
	log := config.WithContext(ctx)

	list, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list category progress")
		return nil, err
	}
	return list, nil
}

// trailingRun walks backward from the most recent outcome and returns the
// length and sign of the run sharing its correctness.
func trailingRun(outcomes []AnswerOutcome) (int, bool) {
	last := outcomes[len(outcomes)-1].IsCorrect
	run := 0
	for i := len(outcomes) - 1; i >= 0; i-- {
		if outcomes[i].IsCorrect != last {
			break
		}
		run++
	}
	return run, last
}

// weakSubcategories flags every subcategory with at least minAnswers in the
// batch and local accuracy below the threshold. The result replaces, never
// merges with, the previous set.
func weakSubcategories(outcomes []AnswerOutcome, minAnswers int, threshold float64) []uuid.UUID {
	type tally struct {
		total   int
		correct int
	}
	counts := make(map[uuid.UUID]*tally)
	var order []uuid.UUID
	for _, outcome := range outcomes {
		t, ok := counts[outcome.SubcategoryID]
		if !ok {
			t = &tally{}
			counts[outcome.SubcategoryID] = t
			order = append(order, outcome.SubcategoryID)
		}
		t.total++
		if outcome.IsCorrect {
			t.correct++
		}
	}

	weak := []uuid.UUID{}
	for _, subcategoryID := range order {
		t := counts[subcategoryID]
		if t.total >= minAnswers && float64(t.correct)/float64(t.total) < threshold {
			weak = append(weak, subcategoryID)
		}
	}
	return weak
}

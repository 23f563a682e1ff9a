package gamification

import (
	"context"
	"time"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BadgeProgressDTO struct {
	BadgeID  uuid.UUID `json:"badge_id"`
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Progress int       `json:"progress"`
}

type Service interface {
	Evaluate(ctx context.Context, userID uuid.UUID) ([]*UserBadge, error)
	BadgeProgress(ctx context.Context, userID uuid.UUID) ([]BadgeProgressDTO, error)
	RecordActivity(ctx context.Context, userID uuid.UUID, at time.Time) (*GameStats, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*GameStats, error)
	ListUserBadges(ctx context.Context, userID uuid.UUID) ([]*UserBadge, error)
	MarkNotified(ctx context.Context, userID uuid.UUID) error
	StudyStreak(ctx context.Context, userID uuid.UUID) (int, error)
}

type service struct {
	repo        Repository
	masteryRepo mastery.Repository
}

func NewService(repo Repository, masteryRepo mastery.Repository) Service {
	return &service{repo: repo, masteryRepo: masteryRepo}
}

// Evaluate checks every catalog badge the user has not earned yet against a
// single snapshot of their history and awards the satisfied ones. Calling it
// again without new activity awards nothing.
func (s *service) Evaluate(ctx context.Context, userID uuid.UUID) ([]*UserBadge, error) {
	log := config.WithContext(ctx)

	badges, err := s.repo.ListBadges()
	if err != nil {
		log.WithError(err).Error("Failed to load badge catalog")
		return nil, err
	}

	existing, err := s.repo.ListUserBadges(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user badges")
		return nil, err
	}
	earned := make(map[uuid.UUID]bool, len(existing))
	for _, ub := range existing {
		earned[ub.BadgeID] = true
	}

	snap, stats, err := s.gather(ctx, userID)
	if err != nil {
		return nil, err
	}

	var awarded []*UserBadge
	pointsGained := 0
	now := time.Now()

	for _, badge := range badges {
		if earned[badge.ID] {
			continue
		}

		params, err := parseParams(badge.RequirementParams)
		if err != nil {
			log.WithError(err).WithField("badge_key", badge.Key).
				Warn("Skipping badge with malformed requirement params")
			continue
		}

		met, _ := checkRequirement(badge.RequirementType, params, snap)
		if !met {
			continue
		}

		ub := &UserBadge{
			ID:       uuid.New(),
			UserID:   userID,
			BadgeID:  badge.ID,
			Progress: 100,
			EarnedAt: now,
			Badge:    badge,
		}
		if err := s.repo.CreateUserBadge(ub); err != nil {
			log.WithError(err).WithField("badge_key", badge.Key).Error("Failed to award badge")
			return nil, err
		}

		awarded = append(awarded, ub)
		pointsGained += badge.Points
	}

	if len(awarded) > 0 {
		stats.TotalBadgesEarned += len(awarded)
		stats.TotalPoints += pointsGained
		stats.Level = CalculateLevel(stats.TotalPoints)
		stats.NextLevelPoints = NextLevelPoints(stats.Level)

		if err := s.repo.SaveStats(stats); err != nil {
			log.WithError(err).Error("Failed to save game stats after awards")
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"user_id": userID,
			"badges":  len(awarded),
			"points":  pointsGained,
		}).Info("Badges awarded")
	}

	return awarded, nil
}

// BadgeProgress is the read-only preview path: 0..100 per unearned badge,
// nothing is written.
func (s *service) BadgeProgress(ctx context.Context, userID uuid.UUID) ([]BadgeProgressDTO, error) {
	log := config.WithContext(ctx)

	badges, err := s.repo.ListBadges()
	if err != nil {
		log.WithError(err).Error("Failed to load badge catalog")
		return nil, err
	}

	existing, err := s.repo.ListUserBadges(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user badges")
		return nil, err
	}
	earned := make(map[uuid.UUID]bool, len(existing))
	for _, ub := range existing {
		earned[ub.BadgeID] = true
	}

	snap, _, err := s.gather(ctx, userID)
	if err != nil {
		return nil, err
	}

	preview := make([]BadgeProgressDTO, 0, len(badges))
	for _, badge := range badges {
		if earned[badge.ID] {
			continue
		}
		params, err := parseParams(badge.RequirementParams)
		if err != nil {
			continue
		}
		_, progress := checkRequirement(badge.RequirementType, params, snap)
		preview = append(preview, BadgeProgressDTO{
			BadgeID:  badge.ID,
			Key:      badge.Key,
			Name:     badge.Name,
			Progress: progress,
		})
	}
	return preview, nil
}

// RecordActivity updates the daily streak for one qualifying activity event.
func (s *service) RecordActivity(ctx context.Context, userID uuid.UUID, at time.Time) (*GameStats, error) {
	log := config.WithContext(ctx)

	stats, err := s.loadOrInitStats(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load game stats")
		return nil, err
	}

	applyActivity(stats, at)

	if err := s.repo.SaveStats(stats); err != nil {
		log.WithError(err).Error("Failed to save game stats")
		return nil, err
	}
	return stats, nil
}

func (s *service) GetStats(ctx context.Context, userID uuid.UUID) (*GameStats, error) {
	log := config.WithContext(ctx)

	stats, err := s.repo.GetStats(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load game stats")
		return nil, err
	}
	if stats == nil {
		// Cold start: present defaults without persisting anything.
		return &GameStats{
			UserID:          userID,
			Level:           1,
			NextLevelPoints: NextLevelPoints(1),
		}, nil
	}
	return stats, nil
}

func (s *service) ListUserBadges(ctx context.Context, userID uuid.UUID) ([]*UserBadge, error) {
	log := config.WithContext(ctx)

	list, err := s.repo.ListUserBadges(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user badges")
		return nil, err
	}
	return list, nil
}

func (s *service) MarkNotified(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.MarkNotified(userID); err != nil {
		log.WithError(err).Error("Failed to mark badges as notified")
		return err
	}
	return nil
}

func (s *service) StudyStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	log := config.WithContext(ctx)

	dates, err := s.repo.ListCompletionDates(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list completion dates")
		return 0, err
	}
	return CalculateStudyStreak(dates, time.Now()), nil
}

func (s *service) loadOrInitStats(userID uuid.UUID) (*GameStats, error) {
	stats, err := s.repo.GetStats(userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &GameStats{
			ID:              uuid.New(),
			UserID:          userID,
			Level:           1,
			NextLevelPoints: NextLevelPoints(1),
		}
	}
	return stats, nil
}

func (s *service) gather(ctx context.Context, userID uuid.UUID) (statsSnapshot, *GameStats, error) {
	log := config.WithContext(ctx)

	summaries, err := s.repo.ListQuizSummaries(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz summaries")
		return statsSnapshot{}, nil, err
	}

	stats, err := s.loadOrInitStats(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load game stats")
		return statsSnapshot{}, nil, err
	}

	records, err := s.masteryRepo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load mastery records")
		return statsSnapshot{}, nil, err
	}

	guides, err := s.repo.CountStudyGuides(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count study guides")
		return statsSnapshot{}, nil, err
	}

	snap := statsSnapshot{
		CompletedCount: len(summaries),
		StudyGuides:    guides,
		CurrentStreak:  stats.CurrentStreak,
	}
	for _, summary := range summaries {
		snap.QuizScores = append(snap.QuizScores, summary.Score)
		if summary.Mode == "ADAPTIVE" || summary.Mode == "REVIEW" {
			snap.ReviewSessions++
		}
	}
	for _, record := range records {
		snap.TopicAverages = append(snap.TopicAverages, record.RollingAverage)
	}
	return snap, stats, nil
}

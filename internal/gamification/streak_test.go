package gamification_test

import (
	"testing"
	"time"

	"github.com/certlab/certprep-lambda/internal/gamification"
)

func day(offset int) time.Time {
	base := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestCalculateStudyStreak(t *testing.T) {
	now := day(10)

	t.Run("NoCompletions", func(t *testing.T) {
		if got := gamification.CalculateStudyStreak(nil, now); got != 0 {
			t.Errorf("Expected 0, got %d", got)
		}
	})

	t.Run("StaleStreakReturnsZero", func(t *testing.T) {
		dates := []time.Time{day(5), day(6), day(7)}
		if got := gamification.CalculateStudyStreak(dates, now); got != 0 {
			t.Errorf("streak ending 3 days ago must read 0, got %d", got)
		}
	})

	t.Run("ConsecutiveDaysEndingYesterday", func(t *testing.T) {
		dates := []time.Time{day(7), day(8), day(9)}
		if got := gamification.CalculateStudyStreak(dates, now); got != 3 {
			t.Errorf("Expected 3, got %d", got)
		}
	})

	t.Run("MultipleSessionsPerDayCountOnce", func(t *testing.T) {
		dates := []time.Time{
			day(9), day(9).Add(2 * time.Hour), day(10), day(10).Add(time.Minute),
		}
		if got := gamification.CalculateStudyStreak(dates, now); got != 2 {
			t.Errorf("Expected 2 after deduplication, got %d", got)
		}
	})

	t.Run("GapBreaksTheCount", func(t *testing.T) {
		dates := []time.Time{day(4), day(5), day(7), day(8), day(9), day(10)}
		if got := gamification.CalculateStudyStreak(dates, now); got != 4 {
			t.Errorf("Expected 4 (gap at day 6 breaks it), got %d", got)
		}
	})
}

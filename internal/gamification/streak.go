package gamification

import (
	"sort"
	"time"

	util "github.com/certlab/certprep-lambda/internal/utils"
)

// applyActivity folds one qualifying activity day into the streak counters.
// Same-day activity is a no-op, a one-day gap extends the streak, anything
// longer starts over at 1.
func applyActivity(stats *GameStats, at time.Time) {
	day := util.DateOnly(at)

	if stats.LastActivityDate == nil {
		stats.CurrentStreak = 1
	} else {
		switch gap := util.DaysBetween(*stats.LastActivityDate, day); {
		case gap == 1:
			stats.CurrentStreak++
		case gap > 1:
			stats.CurrentStreak = 1
		}
	}

	if stats.LastActivityDate == nil || day.After(*stats.LastActivityDate) {
		stats.LastActivityDate = &day
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
}

// CalculateStudyStreak derives a streak purely from historical completion
// timestamps, for display and audit. The streak is alive only if the most
// recent activity day is today or yesterday relative to now.
func CalculateStudyStreak(completions []time.Time, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(completions))
	var days []time.Time
	for _, t := range completions {
		day := util.DateOnly(t)
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if gap := util.DaysBetween(days[0], util.DateOnly(now)); gap > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if util.DaysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

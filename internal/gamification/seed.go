package gamification

import (
	"context"
	"fmt"

	"github.com/certlab/certprep-lambda/internal/config"
)

// DefaultBadges is the shipped catalog. Seeding upserts by key, so redeploys
// update names and points without duplicating rows or re-awarding anything.
func DefaultBadges() []Badge {
	return []Badge{
		{Key: "first_quiz", Name: "First Steps", Description: "Complete your first quiz", Category: BadgeCategoryProgress, RequirementType: RequirementQuizCompleted, RequirementParams: RequirementParams{Count: 1}.JSON(), Points: 50, Rarity: RarityCommon},
		{Key: "quiz_10", Name: "Getting Serious", Description: "Complete 10 quizzes", Category: BadgeCategoryProgress, RequirementType: RequirementQuizCompleted, RequirementParams: RequirementParams{Count: 10}.JSON(), Points: 100, Rarity: RarityCommon},
		{Key: "quiz_50", Name: "Half Century", Description: "Complete 50 quizzes", Category: BadgeCategoryProgress, RequirementType: RequirementQuizCompleted, RequirementParams: RequirementParams{Count: 50}.JSON(), Points: 250, Rarity: RarityUncommon},
		{Key: "quiz_100", Name: "Centurion", Description: "Complete 100 quizzes", Category: BadgeCategoryProgress, RequirementType: RequirementQuizCompleted, RequirementParams: RequirementParams{Count: 100}.JSON(), Points: 500, Rarity: RarityRare},
		{Key: "perfect_1", Name: "Flawless", Description: "Score 100% on a quiz", Category: BadgeCategoryPerformance, RequirementType: RequirementPerfectScore, RequirementParams: RequirementParams{Count: 1}.JSON(), Points: 100, Rarity: RarityCommon},
		{Key: "perfect_10", Name: "Perfectionist", Description: "Score 100% on 10 quizzes", Category: BadgeCategoryPerformance, RequirementType: RequirementPerfectScore, RequirementParams: RequirementParams{Count: 10}.JSON(), Points: 300, Rarity: RarityRare},
		{Key: "high_scorer", Name: "High Scorer", Description: "Score 90% or better on 5 quizzes", Category: BadgeCategoryPerformance, RequirementType: RequirementHighScore, RequirementParams: RequirementParams{Threshold: 90, Count: 5}.JSON(), Points: 150, Rarity: RarityUncommon},
		{Key: "consistent_80", Name: "Consistent", Description: "Average 80% across at least 10 quizzes", Category: BadgeCategoryPerformance, RequirementType: RequirementAvgScore, RequirementParams: RequirementParams{Threshold: 80, Count: 10}.JSON(), Points: 200, Rarity: RarityUncommon},
		{Key: "streak_3", Name: "Warming Up", Description: "Study 3 days in a row", Category: BadgeCategoryStreak, RequirementType: RequirementDailyStreak, RequirementParams: RequirementParams{Count: 3}.JSON(), Points: 50, Rarity: RarityCommon},
		{Key: "streak_7", Name: "Week Warrior", Description: "Study 7 days in a row", Category: BadgeCategoryStreak, RequirementType: RequirementDailyStreak, RequirementParams: RequirementParams{Count: 7}.JSON(), Points: 150, Rarity: RarityUncommon},
		{Key: "streak_30", Name: "Monthly Master", Description: "Study 30 days in a row", Category: BadgeCategoryStreak, RequirementType: RequirementDailyStreak, RequirementParams: RequirementParams{Count: 30}.JSON(), Points: 500, Rarity: RarityEpic},
		{Key: "topic_master", Name: "Topic Master", Description: "Reach 90% mastery in a topic", Category: BadgeCategoryMastery, RequirementType: RequirementMasteryScore, RequirementParams: RequirementParams{Threshold: 90}.JSON(), Points: 200, Rarity: RarityUncommon},
		{Key: "renaissance", Name: "Renaissance", Description: "Reach 80% mastery in 5 topics", Category: BadgeCategoryMastery, RequirementType: RequirementMultiMastery, RequirementParams: RequirementParams{Threshold: 80, Areas: 5}.JSON(), Points: 400, Rarity: RarityRare},
		{Key: "exam_ready", Name: "Exam Ready", Description: "Reach 85% mastery in 10 topics", Category: BadgeCategoryMastery, RequirementType: RequirementMultiMastery, RequirementParams: RequirementParams{Threshold: 85, Areas: 10}.JSON(), Points: 1000, Rarity: RarityLegendary},
		{Key: "guide_reader", Name: "Guide Reader", Description: "Generate your first study guide", Category: BadgeCategorySpecial, RequirementType: RequirementStudyGuide, RequirementParams: RequirementParams{Count: 1}.JSON(), Points: 50, Rarity: RarityCommon},
		{Key: "guide_collector", Name: "Guide Collector", Description: "Generate 10 study guides", Category: BadgeCategorySpecial, RequirementType: RequirementStudyGuide, RequirementParams: RequirementParams{Count: 10}.JSON(), Points: 200, Rarity: RarityUncommon},
		{Key: "reviewer", Name: "Reviewer", Description: "Complete 10 adaptive review sessions", Category: BadgeCategorySpecial, RequirementType: RequirementReviewSessions, RequirementParams: RequirementParams{Count: 10}.JSON(), Points: 150, Rarity: RarityUncommon},
	}
}

func SeedBadges(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	for _, badge := range DefaultBadges() {
		b := badge
		if err := repo.UpsertBadge(&b); err != nil {
			return fmt.Errorf("failed to seed badge %q: %w", b.Key, err)
		}
	}

	log.Info("Badge catalog seeded")
	return nil
}

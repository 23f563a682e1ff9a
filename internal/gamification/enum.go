package gamification

type BadgeCategory string

const (
	BadgeCategoryProgress    BadgeCategory = "PROGRESS"
	BadgeCategoryPerformance BadgeCategory = "PERFORMANCE"
	BadgeCategoryStreak      BadgeCategory = "STREAK"
	BadgeCategoryMastery     BadgeCategory = "MASTERY"
	BadgeCategorySpecial     BadgeCategory = "SPECIAL"
)

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "COMMON"
	RarityUncommon  BadgeRarity = "UNCOMMON"
	RarityRare      BadgeRarity = "RARE"
	RarityEpic      BadgeRarity = "EPIC"
	RarityLegendary BadgeRarity = "LEGENDARY"
)

type RequirementType string

const (
	RequirementQuizCompleted  RequirementType = "quiz_completed"
	RequirementPerfectScore   RequirementType = "perfect_score"
	RequirementHighScore      RequirementType = "high_score"
	RequirementAvgScore       RequirementType = "avg_score"
	RequirementDailyStreak    RequirementType = "daily_streak"
	RequirementMasteryScore   RequirementType = "mastery_score"
	RequirementMultiMastery   RequirementType = "multi_mastery"
	RequirementStudyGuide     RequirementType = "study_guide"
	RequirementReviewSessions RequirementType = "review_sessions"
)

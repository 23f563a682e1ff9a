package gamification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Badge is an immutable catalog entry. The requirement is a tagged variant:
// RequirementType selects the rule, RequirementParams carries its numbers.
type Badge struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Key               string          `gorm:"type:text;uniqueIndex;not null" json:"key"`
	Name              string          `gorm:"type:text;not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Category          BadgeCategory   `gorm:"type:text;not null" json:"category"`
	RequirementType   RequirementType `gorm:"type:text;not null" json:"requirement_type"`
	RequirementParams datatypes.JSON  `gorm:"type:jsonb;not null;default:'{}'" json:"requirement_params"`
	Points            int             `gorm:"not null;default:0" json:"points"`
	Rarity            BadgeRarity     `gorm:"type:text;not null;default:'COMMON'" json:"rarity"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// UserBadge joins a user to an earned badge. At most one row per
// (user, badge); re-evaluation never creates a second one.
type UserBadge struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	Progress   int       `gorm:"not null;default:0" json:"progress"`
	EarnedAt   time.Time `json:"earned_at"`
	IsNotified bool      `gorm:"not null;default:false" json:"is_notified"`

	Badge *Badge `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
}

// GameStats is the single per-user gamification record, created lazily on the
// first activity or award.
type GameStats struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TotalPoints       int        `gorm:"not null;default:0" json:"total_points"`
	CurrentStreak     int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak     int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate  *time.Time `json:"last_activity_date,omitempty"`
	TotalBadgesEarned int        `gorm:"not null;default:0" json:"total_badges_earned"`
	Level             int        `gorm:"not null;default:1" json:"level"`
	NextLevelPoints   int        `gorm:"not null;default:100" json:"next_level_points"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

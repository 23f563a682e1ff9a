package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoogleID              string    `gorm:"type:text;uniqueIndex;not null" json:"-"`
	Email                 string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Name                  string    `gorm:"type:text;not null" json:"name"`
	AvatarURL             string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Role                  string    `gorm:"type:text;not null;default:'user'" json:"role"`
	EncryptedRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session stores only the SHA-256 hash of the opaque token handed to the
// client; the plaintext token never reaches storage or logs.
type Session struct {
	TokenHash string    `gorm:"primaryKey;column:token_hash" json:"-"`
	UserID    uuid.UUID `gorm:"index;not null;column:user_id" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) Expired(now time.Time) bool {
	return s != nil && s.ExpiresAt.Before(now)
}

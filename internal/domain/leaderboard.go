package domain

import "github.com/google/uuid"

// LeaderboardEntry holds the cumulative score written by the external
// gameplay path; this core only reads it.
type LeaderboardEntry struct {
	UserID    uuid.UUID `gorm:"primaryKey;column:user_id" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Score     int64     `gorm:"not null;default:0;column:score" json:"score"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}

// LeaderboardRow is the read shape exposed to callers.
type LeaderboardRow struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Score    int64     `json:"score"`
}

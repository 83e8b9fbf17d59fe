package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type LeaderboardRepo interface {
	Top(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.LeaderboardRow, error)
}

type leaderboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLeaderboardRepo(db *gorm.DB, baseLog *logger.Logger) LeaderboardRepo {
	repoLog := baseLog.With("repo", "LeaderboardRepo")
	return &leaderboardRepo{db: db, log: repoLog}
}

func (lr *leaderboardRepo) Top(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.LeaderboardRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*domain.LeaderboardRow
	if err := transaction.WithContext(ctx).
		Model(&domain.LeaderboardEntry{}).
		Select("users.id AS id, users.username AS username, leaderboard_entries.score AS score").
		Joins("JOIN users ON users.id = leaderboard_entries.user_id").
		Order("leaderboard_entries.score DESC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, MapError("leaderboard.top", err)
	}
	return results, nil
}

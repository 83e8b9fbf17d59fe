package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

const leaderboardLimit = 25

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardRow, error)
}

type leaderboardService struct {
	db              *gorm.DB
	log             *logger.Logger
	leaderboardRepo repos.LeaderboardRepo
}

func NewLeaderboardService(db *gorm.DB, log *logger.Logger, leaderboardRepo repos.LeaderboardRepo) LeaderboardService {
	serviceLog := log.With("service", "LeaderboardService")
	return &leaderboardService{
		db:              db,
		log:             serviceLog,
		leaderboardRepo: leaderboardRepo,
	}
}

func (ls *leaderboardService) GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardRow, error) {
	return ls.leaderboardRepo.Top(ctx, nil, leaderboardLimit)
}

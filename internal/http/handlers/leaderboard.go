package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/response"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type LeaderboardHandler struct {
	log                *logger.Logger
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(log *logger.Logger, leaderboardService services.LeaderboardService) *LeaderboardHandler {
	handlerLog := log.With("handler", "LeaderboardHandler")
	return &LeaderboardHandler{log: handlerLog, leaderboardService: leaderboardService}
}

func (lh *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := lh.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"leaderboard": entries})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/response"
)

func Health(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "ok"})
}

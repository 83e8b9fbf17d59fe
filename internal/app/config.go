package app

import (
	"strings"
	"time"

	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/utils"
)

type Config struct {
	HTTPAddr      string
	LogMode       string
	SessionTTL    time.Duration
	SecureCookies bool
	CORSOrigins   []string
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	logMode := utils.GetEnv("LOG_MODE", "development", log)
	sessionTTLHours := utils.GetEnvAsInt("SESSION_TTL_HOURS", 24*7, log)
	secureCookies := strings.EqualFold(utils.GetEnv("SECURE_COOKIES", "false", log), "true")
	corsOrigins := strings.Split(utils.GetEnv("CORS_ORIGINS", "http://localhost:3000", log), ",")
	return Config{
		HTTPAddr:      httpAddr,
		LogMode:       logMode,
		SessionTTL:    time.Duration(sessionTTLHours) * time.Hour,
		SecureCookies: secureCookies,
		CORSOrigins:   corsOrigins,
	}
}

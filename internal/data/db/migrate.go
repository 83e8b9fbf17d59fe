package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

// AutoMigrate keeps the schema in step with the domain models.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Category{},
		&domain.Quiz{},
		&domain.Question{},
		&domain.Option{},
		&domain.LeaderboardEntry{},
	)
}

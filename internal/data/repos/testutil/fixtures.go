package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role domain.Role) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "u-" + uuid.NewString()[:8],
		DisplayName:  "Test User",
		Role:         role,
		Salt:         "00",
		PasswordHash: "00",
		PasswordAlgo: "scrypt",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, slug string) *domain.Category {
	tb.Helper()
	c := &domain.Category{
		ID:          slug,
		Name:        slug,
		Slug:        slug,
		Description: "seeded",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, categoryID string, createdBy uuid.UUID, status domain.QuizStatus) *domain.Quiz {
	tb.Helper()
	q := &domain.Quiz{
		ID:         uuid.New(),
		Title:      "seeded quiz",
		CategoryID: categoryID,
		CreatedBy:  createdBy,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

func SeedLeaderboardEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, score int64) *domain.LeaderboardEntry {
	tb.Helper()
	e := &domain.LeaderboardEntry{
		UserID: userID,
		Score:  score,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed leaderboard entry: %v", err)
	}
	return e
}

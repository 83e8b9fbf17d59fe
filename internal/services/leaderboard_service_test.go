package services

import (
	"context"
	"testing"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos/testutil"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func TestGetLeaderboard(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)
	svc := NewLeaderboardService(tx, log, repos.NewLeaderboardRepo(tx, log))

	low := testutil.SeedUser(t, ctx, tx, "low@example.com", domain.RoleUser)
	high := testutil.SeedUser(t, ctx, tx, "high@example.com", domain.RoleUser)
	mid := testutil.SeedUser(t, ctx, tx, "mid@example.com", domain.RoleUser)
	testutil.SeedLeaderboardEntry(t, ctx, tx, low.ID, 120)
	testutil.SeedLeaderboardEntry(t, ctx, tx, high.ID, 980)
	testutil.SeedLeaderboardEntry(t, ctx, tx, mid.ID, 450)

	rows, err := svc.GetLeaderboard(ctx)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != high.ID || rows[1].ID != mid.ID || rows[2].ID != low.ID {
		t.Fatalf("rows not ordered by score descending: %+v", rows)
	}
	if rows[0].Username != high.Username {
		t.Fatalf("username not joined: %+v", rows[0])
	}
	if rows[0].Score != 980 {
		t.Fatalf("score mismatch: %d", rows[0].Score)
	}
}

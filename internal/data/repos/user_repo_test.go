package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos/testutil"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func TestUserRepoGetByIdentifier(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	seeded := testutil.SeedUser(t, ctx, tx, "lookup@example.com", domain.RoleUser)

	byEmail, err := repo.GetByIdentifier(ctx, nil, "lookup@example.com")
	if err != nil {
		t.Fatalf("GetByIdentifier by email: %v", err)
	}
	if byEmail.ID != seeded.ID {
		t.Fatalf("wrong user by email")
	}

	byUsername, err := repo.GetByIdentifier(ctx, nil, seeded.Username)
	if err != nil {
		t.Fatalf("GetByIdentifier by username: %v", err)
	}
	if byUsername.ID != seeded.ID {
		t.Fatalf("wrong user by username")
	}

	if _, err := repo.GetByIdentifier(ctx, nil, "missing"); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("missing identifier: expected not_found, got %v", err)
	}
}

func TestUserRepoUniqueEmail(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	first := testutil.SeedUser(t, ctx, tx, "unique@example.com", domain.RoleUser)

	dup := *first
	dup.ID = uuid.New()
	dup.Username = "someone-else"
	_, err := repo.Create(ctx, nil, &dup)
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("duplicate key: expected conflict, got %v", err)
	}
}

func TestUserRepoCountAdmins(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewUserRepo(tx, testutil.Logger(t))

	testutil.SeedUser(t, ctx, tx, "count-a@example.com", domain.RoleAdmin)
	testutil.SeedUser(t, ctx, tx, "count-b@example.com", domain.RoleAdmin)
	testutil.SeedUser(t, ctx, tx, "count-c@example.com", domain.RoleUser)

	count, err := repo.CountAdmins(ctx, nil)
	if err != nil {
		t.Fatalf("CountAdmins: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 admins, got %d", count)
	}
}

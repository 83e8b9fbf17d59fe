package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos/testutil"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func newAuthService(t *testing.T, tx *gorm.DB, ttl time.Duration) AuthService {
	t.Helper()
	log := testutil.Logger(t)
	userRepo := repos.NewUserRepo(tx, log)
	sessionRepo := repos.NewSessionRepo(tx, log)
	quizRepo := repos.NewQuizRepo(tx, log)
	userService := NewUserService(tx, log, userRepo, sessionRepo, quizRepo)
	return NewAuthService(tx, log, userRepo, sessionRepo, userService, ttl)
}

func TestRegisterAndVerifyUser(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newAuthService(t, tx, 7*24*time.Hour)

	user, err := svc.RegisterUser(ctx, CreateUserInput{
		Email:    "Alice@Example.com",
		Username: "alice_01",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("registration must grant the user role, got %s", user.Role)
	}
	if user.DisplayName != "alice_01" {
		t.Fatalf("display name should default to username, got %q", user.DisplayName)
	}

	// Verify by email, by username, and case-insensitively.
	for _, identifier := range []string{"alice@example.com", "ALICE@EXAMPLE.COM", "alice_01"} {
		got, err := svc.VerifyUser(ctx, identifier, "correct horse")
		if err != nil {
			t.Fatalf("VerifyUser(%q): %v", identifier, err)
		}
		if got.ID != user.ID {
			t.Fatalf("VerifyUser(%q) returned wrong user", identifier)
		}
	}

	if _, err := svc.VerifyUser(ctx, "alice@example.com", "wrong"); !domain.IsCode(err, domain.CodeForbidden) {
		t.Fatalf("bad password: expected forbidden, got %v", err)
	}
	if _, err := svc.VerifyUser(ctx, "nobody@example.com", "correct horse"); !domain.IsCode(err, domain.CodeForbidden) {
		t.Fatalf("unknown identifier: expected forbidden, got %v", err)
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newAuthService(t, tx, 7*24*time.Hour)

	input := CreateUserInput{Email: "dup@example.com", Username: "dup_user", Password: "password1"}
	if _, err := svc.RegisterUser(ctx, input); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	input.Username = "other_user"
	if _, err := svc.RegisterUser(ctx, input); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("duplicate email: expected conflict, got %v", err)
	}
	input.Email = "other@example.com"
	input.Username = "dup_user"
	if _, err := svc.RegisterUser(ctx, input); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("duplicate username: expected conflict, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newAuthService(t, tx, 7*24*time.Hour)

	user := testutil.SeedUser(t, ctx, tx, "session@example.com", domain.RoleUser)

	first, err := svc.CreateSession(ctx, user.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if got, err := svc.GetUserBySession(ctx, first.Token); err != nil || got == nil || got.ID != user.ID {
		t.Fatalf("GetUserBySession: got %v, %v", got, err)
	}

	// A raw token must never be stored verbatim.
	var stored int64
	if err := tx.WithContext(ctx).Model(&domain.Session{}).Where("token_hash = ?", first.Token).Count(&stored).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if stored != 0 {
		t.Fatalf("session token stored in plaintext")
	}

	// A new session evicts the previous one for the same user.
	second, err := svc.CreateSession(ctx, user.ID)
	if err != nil {
		t.Fatalf("CreateSession again: %v", err)
	}
	if got, err := svc.GetUserBySession(ctx, first.Token); err != nil || got != nil {
		t.Fatalf("evicted session still resolves: %v, %v", got, err)
	}
	if got, err := svc.GetUserBySession(ctx, second.Token); err != nil || got == nil {
		t.Fatalf("fresh session does not resolve: %v, %v", got, err)
	}

	if err := svc.RemoveSession(ctx, second.Token); err != nil {
		t.Fatalf("RemoveSession: %v", err)
	}
	if got, err := svc.GetUserBySession(ctx, second.Token); err != nil || got != nil {
		t.Fatalf("removed session still resolves: %v, %v", got, err)
	}
	// Removing an unknown token is a no-op.
	if err := svc.RemoveSession(ctx, "not-a-token"); err != nil {
		t.Fatalf("RemoveSession unknown token: %v", err)
	}
}

func TestExpiredSessionLazyDeletion(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newAuthService(t, tx, -time.Hour)

	user := testutil.SeedUser(t, ctx, tx, "expired@example.com", domain.RoleUser)
	token, err := svc.CreateSession(ctx, user.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if got, err := svc.GetUserBySession(ctx, token.Token); err != nil || got != nil {
		t.Fatalf("expired session resolved a user: %v, %v", got, err)
	}

	// The expired row is deleted on first sight.
	var remaining int64
	if err := tx.WithContext(ctx).Model(&domain.Session{}).Where("user_id = ?", user.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expired session row not cleaned up")
	}
}

func TestGetUserBySessionEmptyToken(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newAuthService(t, tx, time.Hour)

	if got, err := svc.GetUserBySession(ctx, ""); err != nil || got != nil {
		t.Fatalf("empty token: expected nil, nil, got %v, %v", got, err)
	}
}

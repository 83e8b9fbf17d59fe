package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos/testutil"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func newUserService(t *testing.T, tx *gorm.DB) UserService {
	t.Helper()
	log := testutil.Logger(t)
	return NewUserService(tx, log, repos.NewUserRepo(tx, log), repos.NewSessionRepo(tx, log), repos.NewQuizRepo(tx, log))
}

func TestCreateUserWithRole(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newUserService(t, tx)

	admin, err := svc.CreateUser(ctx, CreateUserInput{
		Email:       "ops@example.com",
		Username:    "ops",
		Password:    "password1",
		DisplayName: "Ops Admin",
	}, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
	if admin.PasswordAlgo != PasswordAlgoScrypt {
		t.Fatalf("new users must hash with scrypt, got %s", admin.PasswordAlgo)
	}
}

func TestDeleteUserGuards(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newUserService(t, tx)

	admin := testutil.SeedUser(t, ctx, tx, "only-admin@example.com", domain.RoleAdmin)
	author := testutil.SeedUser(t, ctx, tx, "author@example.com", domain.RoleUser)
	category := testutil.SeedCategory(t, ctx, tx, "guards")
	quiz := testutil.SeedQuiz(t, ctx, tx, category.ID, author.ID, domain.QuizApproved)

	// Nobody deletes their own account through this path.
	if err := svc.DeleteUser(ctx, admin.ID, admin.ID); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("self delete: expected validation error, got %v", err)
	}

	// The last admin is protected.
	secondAdmin := testutil.SeedUser(t, ctx, tx, "second-admin@example.com", domain.RoleAdmin)
	if err := svc.DeleteUser(ctx, admin.ID, secondAdmin.ID); err != nil {
		t.Fatalf("delete admin with another admin present: %v", err)
	}
	if err := svc.DeleteUser(ctx, secondAdmin.ID, author.ID); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("last admin: expected conflict, got %v", err)
	}

	// Users still owning quizzes cannot be removed.
	if err := svc.DeleteUser(ctx, author.ID, secondAdmin.ID); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("quiz owner: expected conflict, got %v", err)
	}
	if err := tx.WithContext(ctx).Delete(quiz).Error; err != nil {
		t.Fatalf("remove quiz: %v", err)
	}
	if err := svc.DeleteUser(ctx, author.ID, secondAdmin.ID); err != nil {
		t.Fatalf("DeleteUser after quizzes removed: %v", err)
	}
	if err := svc.DeleteUser(ctx, author.ID, secondAdmin.ID); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("second delete: expected not_found, got %v", err)
	}
}

func TestDeleteUserDropsSessions(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newUserService(t, tx)

	admin := testutil.SeedUser(t, ctx, tx, "keeper@example.com", domain.RoleAdmin)
	victim := testutil.SeedUser(t, ctx, tx, "victim@example.com", domain.RoleUser)
	session := &domain.Session{
		TokenHash: HashSessionToken("some-token"),
		UserID:    victim.ID,
	}
	if err := tx.WithContext(ctx).Create(session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := svc.DeleteUser(ctx, victim.ID, admin.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	var remaining int64
	if err := tx.WithContext(ctx).Model(&domain.Session{}).Where("user_id = ?", victim.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("sessions survived user deletion")
	}
}

package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos/testutil"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

func newCatalogService(t *testing.T, tx *gorm.DB) CatalogService {
	t.Helper()
	log := testutil.Logger(t)
	return NewCatalogService(tx, log, repos.NewCategoryRepo(tx, log), repos.NewQuizRepo(tx, log))
}

func TestCreateCategory(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newCatalogService(t, tx)

	category, err := svc.CreateCategory(ctx, CreateCategoryInput{
		Name:        "  Web Security!  ",
		Description: "Attacks on the web stack.",
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.ID != "web-security" || category.Slug != "web-security" {
		t.Fatalf("unexpected slug: id=%q slug=%q", category.ID, category.Slug)
	}
	if category.Name != "Web Security!" {
		t.Fatalf("name not trimmed: %q", category.Name)
	}

	// A differently cased name that slugs to the same value collides.
	if _, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "WEB security"}); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("slug collision: expected conflict, got %v", err)
	}

	// A name with no slug-safe characters cannot become a category.
	if _, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "!!!"}); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("empty slug: expected validation error, got %v", err)
	}
}

func TestDeleteCategoryInUse(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newCatalogService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "catalog@example.com", domain.RoleUser)
	category := testutil.SeedCategory(t, ctx, tx, "in-use")
	quiz := testutil.SeedQuiz(t, ctx, tx, category.ID, user.ID, domain.QuizApproved)

	if err := svc.DeleteCategory(ctx, category.ID); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("category with quizzes: expected conflict, got %v", err)
	}

	if err := tx.WithContext(ctx).Delete(quiz).Error; err != nil {
		t.Fatalf("remove quiz: %v", err)
	}
	if err := svc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, err := svc.GetCategoryByID(ctx, category.ID); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("deleted category still readable: %v", err)
	}
	if err := svc.DeleteCategory(ctx, category.ID); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("second delete: expected not_found, got %v", err)
	}
}

func TestGetCategoriesOrdering(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	svc := newCatalogService(t, tx)

	testutil.SeedCategory(t, ctx, tx, "zz-order-last")
	testutil.SeedCategory(t, ctx, tx, "aa-order-first")

	categories, err := svc.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(categories) < 2 {
		t.Fatalf("expected at least 2 categories, got %d", len(categories))
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name > categories[i].Name {
			t.Fatalf("categories not ordered by name: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
}

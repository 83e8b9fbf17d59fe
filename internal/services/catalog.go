package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CatalogService interface {
	GetCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	quizRepo     repos.QuizRepo
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	categoryRepo repos.CategoryRepo,
	quizRepo repos.QuizRepo,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:           db,
		log:          serviceLog,
		categoryRepo: categoryRepo,
		quizRepo:     quizRepo,
	}
}

func (cs *catalogService) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	return cs.categoryRepo.List(ctx, nil)
}

func (cs *catalogService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return cs.categoryRepo.GetByID(ctx, nil, categoryID)
}

func (cs *catalogService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	const op = "category.create"

	name, err := requireText(op, input.Name, "category name", maxCategoryNameLen)
	if err != nil {
		return nil, err
	}
	description, err := optionalText(op, input.Description, maxCategoryDescLen)
	if err != nil {
		return nil, err
	}
	slug := slugify(name)
	if slug == "" {
		return nil, domain.ValidationError(op, "category name is invalid")
	}

	category := &domain.Category{
		ID:          slug,
		Name:        name,
		Slug:        slug,
		Description: description,
	}
	created, err := cs.categoryRepo.Create(ctx, nil, category)
	if err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			return nil, domain.ConflictError(op, "category already exists")
		}
		return nil, err
	}
	cs.log.Info("category created", "slug", slug)
	return created, nil
}

// DeleteCategory refuses while any quiz, whatever its status, references
// the category.
func (cs *catalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	const op = "category.delete"

	id, err := requireText(op, categoryID, "category", maxCategoryNameLen)
	if err != nil {
		return err
	}

	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		used, err := cs.quizRepo.CountByCategory(ctx, tx, id)
		if err != nil {
			return err
		}
		if used > 0 {
			return domain.ConflictError(op, "category is in use")
		}
		rows, err := cs.categoryRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFoundError(op, "category not found")
		}
		return nil
	})
}

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, tx *gorm.DB, categoryID string) (*domain.Category, error)
	Exists(ctx context.Context, tx *gorm.DB, categoryID string) (bool, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Category, error)
	Delete(ctx context.Context, tx *gorm.DB, categoryID string) (int64, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, category *domain.Category) (*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(category).Error; err != nil {
		return nil, MapError("category.create", err)
	}
	return category, nil
}

func (cr *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, categoryID string) (*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result domain.Category
	if err := transaction.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&result).Error; err != nil {
		return nil, MapError("category.get", err)
	}
	return &result, nil
}

func (cr *categoryRepo) Exists(ctx context.Context, tx *gorm.DB, categoryID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", categoryID).
		Count(&count).Error; err != nil {
		return false, MapError("category.exists", err)
	}
	return count > 0, nil
}

func (cr *categoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*domain.Category
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, MapError("category.list", err)
	}
	return results, nil
}

func (cr *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, categoryID string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", categoryID).
		Delete(&domain.Category{})
	if res.Error != nil {
		return 0, MapError("category.delete", res.Error)
	}
	return res.RowsAffected, nil
}

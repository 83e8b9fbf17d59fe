package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.User, error)
	GetByIdentifier(ctx context.Context, tx *gorm.DB, identifier string) (*domain.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.User, error)
	CountAdmins(ctx context.Context, tx *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
		return nil, MapError("user.create", err)
	}
	return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result domain.User
	if err := transaction.WithContext(ctx).
		Where("id = ?", userID).
		First(&result).Error; err != nil {
		return nil, MapError("user.get", err)
	}
	return &result, nil
}

// GetByIdentifier matches email or username, case-insensitively.
func (ur *userRepo) GetByIdentifier(ctx context.Context, tx *gorm.DB, identifier string) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	lowered := strings.ToLower(identifier)
	var result domain.User
	if err := transaction.WithContext(ctx).
		Where("lower(email) = ? OR lower(username) = ?", lowered, lowered).
		First(&result).Error; err != nil {
		return nil, MapError("user.get_by_identifier", err)
	}
	return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.User{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, MapError("user.email_exists", err)
	}
	return count > 0, nil
}

func (ur *userRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.User{}).
		Where("lower(username) = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, MapError("user.username_exists", err)
	}
	return count > 0, nil
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*domain.User
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, MapError("user.list", err)
	}
	return results, nil
}

func (ur *userRepo) CountAdmins(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", domain.RoleAdmin).
		Count(&count).Error; err != nil {
		return 0, MapError("user.count_admins", err)
	}
	return count, nil
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&domain.User{})
	if res.Error != nil {
		return 0, MapError("user.delete", res.Error)
	}
	return res.RowsAffected, nil
}

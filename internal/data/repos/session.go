package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *domain.Session) (*domain.Session, error)
	GetByTokenHash(ctx context.Context, tx *gorm.DB, tokenHash string) (*domain.Session, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	DeleteByTokenHash(ctx context.Context, tx *gorm.DB, tokenHash string) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	repoLog := baseLog.With("repo", "SessionRepo")
	return &sessionRepo{db: db, log: repoLog}
}

func (sr *sessionRepo) Create(ctx context.Context, tx *gorm.DB, session *domain.Session) (*domain.Session, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(session).Error; err != nil {
		return nil, MapError("session.create", err)
	}
	return session, nil
}

func (sr *sessionRepo) GetByTokenHash(ctx context.Context, tx *gorm.DB, tokenHash string) (*domain.Session, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result domain.Session
	if err := transaction.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&result).Error; err != nil {
		return nil, MapError("session.get", err)
	}
	return &result, nil
}

func (sr *sessionRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.Session{}).Error; err != nil {
		return MapError("session.delete_by_user", err)
	}
	return nil
}

// DeleteByTokenHash is idempotent; deleting an absent session is not an error.
func (sr *sessionRepo) DeleteByTokenHash(ctx context.Context, tx *gorm.DB, tokenHash string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&domain.Session{}).Error; err != nil {
		return MapError("session.delete", err)
	}
	return nil
}

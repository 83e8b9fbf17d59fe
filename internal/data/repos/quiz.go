package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type QuizRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *domain.Quiz) (*domain.Quiz, error)
	CreateQuestions(ctx context.Context, tx *gorm.DB, questions []*domain.Question) error
	CreateOptions(ctx context.Context, tx *gorm.DB, options []*domain.Option) error
	GetByIDWithStatus(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, status domain.QuizStatus) (*domain.Quiz, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status domain.QuizStatus) ([]*domain.Quiz, error)
	ListSubmissionsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Quiz, error)
	LoadQuestions(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*domain.Question, error)
	LoadOptions(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*domain.Option, error)
	UpdatePendingFields(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, title, description, categoryID string) (int64, error)
	MarkApproved(ctx context.Context, tx *gorm.DB, quizID, adminID uuid.UUID, reviewedAt time.Time) (int64, error)
	MarkRejected(ctx context.Context, tx *gorm.DB, quizID, adminID uuid.UUID, reason string, reviewedAt time.Time) (int64, error)
	DeleteQuestionsByQuizID(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error
	DeleteOptionsByQuizID(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, tx *gorm.DB, categoryID string) (int64, error)
	CountByCreator(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (qr *quizRepo) Create(ctx context.Context, tx *gorm.DB, quiz *domain.Quiz) (*domain.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if err := transaction.WithContext(ctx).Create(quiz).Error; err != nil {
		return nil, MapError("quiz.create", err)
	}
	return quiz, nil
}

func (qr *quizRepo) CreateQuestions(ctx context.Context, tx *gorm.DB, questions []*domain.Question) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if len(questions) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).Create(&questions).Error; err != nil {
		return MapError("quiz.create_questions", err)
	}
	return nil
}

func (qr *quizRepo) CreateOptions(ctx context.Context, tx *gorm.DB, options []*domain.Option) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if len(options) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).Create(&options).Error; err != nil {
		return MapError("quiz.create_options", err)
	}
	return nil
}

func (qr *quizRepo) GetByIDWithStatus(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, status domain.QuizStatus) (*domain.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var result domain.Quiz
	if err := transaction.WithContext(ctx).
		Where("id = ? AND status = ?", quizID, status).
		First(&result).Error; err != nil {
		return nil, MapError("quiz.get", err)
	}
	return &result, nil
}

func (qr *quizRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status domain.QuizStatus) ([]*domain.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*domain.Quiz
	if err := transaction.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, MapError("quiz.list", err)
	}
	return results, nil
}

// ListSubmissionsByUser returns the caller's pending and rejected quizzes;
// approved ones surface through the public listing instead.
func (qr *quizRepo) ListSubmissionsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*domain.Quiz
	if err := transaction.WithContext(ctx).
		Where("created_by = ? AND status IN ?", userID, []domain.QuizStatus{domain.QuizPending, domain.QuizRejected}).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, MapError("quiz.list_submissions", err)
	}
	return results, nil
}

func (qr *quizRepo) LoadQuestions(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*domain.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*domain.Question
	if len(quizIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Order("quiz_id, position ASC").
		Find(&results).Error; err != nil {
		return nil, MapError("quiz.load_questions", err)
	}
	return results, nil
}

func (qr *quizRepo) LoadOptions(ctx context.Context, tx *gorm.DB, questionIDs []uuid.UUID) ([]*domain.Option, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*domain.Option
	if len(questionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Order("question_id, position ASC").
		Find(&results).Error; err != nil {
		return nil, MapError("quiz.load_options", err)
	}
	return results, nil
}

// UpdatePendingFields only touches rows still in pending state; callers
// read RowsAffected to detect edits racing a moderation decision.
func (qr *quizRepo) UpdatePendingFields(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, title, description, categoryID string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	res := transaction.WithContext(ctx).
		Model(&domain.Quiz{}).
		Where("id = ? AND status = ?", quizID, domain.QuizPending).
		Updates(map[string]any{
			"title":       title,
			"description": description,
			"category_id": categoryID,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, MapError("quiz.update_pending", res.Error)
	}
	return res.RowsAffected, nil
}

func (qr *quizRepo) MarkApproved(ctx context.Context, tx *gorm.DB, quizID, adminID uuid.UUID, reviewedAt time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	res := transaction.WithContext(ctx).
		Model(&domain.Quiz{}).
		Where("id = ? AND status = ?", quizID, domain.QuizPending).
		Updates(map[string]any{
			"status":           domain.QuizApproved,
			"reviewed_by":      adminID,
			"reviewed_at":      reviewedAt,
			"rejection_reason": "",
			"updated_at":       reviewedAt,
		})
	if res.Error != nil {
		return 0, MapError("quiz.approve", res.Error)
	}
	return res.RowsAffected, nil
}

func (qr *quizRepo) MarkRejected(ctx context.Context, tx *gorm.DB, quizID, adminID uuid.UUID, reason string, reviewedAt time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	res := transaction.WithContext(ctx).
		Model(&domain.Quiz{}).
		Where("id = ? AND status = ?", quizID, domain.QuizPending).
		Updates(map[string]any{
			"status":           domain.QuizRejected,
			"reviewed_by":      adminID,
			"reviewed_at":      reviewedAt,
			"rejection_reason": reason,
			"updated_at":       reviewedAt,
		})
	if res.Error != nil {
		return 0, MapError("quiz.reject", res.Error)
	}
	return res.RowsAffected, nil
}

func (qr *quizRepo) DeleteQuestionsByQuizID(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if err := transaction.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Delete(&domain.Question{}).Error; err != nil {
		return MapError("quiz.delete_questions", err)
	}
	return nil
}

func (qr *quizRepo) DeleteOptionsByQuizID(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if err := transaction.WithContext(ctx).
		Where("question_id IN (?)",
			transaction.Model(&domain.Question{}).Select("id").Where("quiz_id = ?", quizID)).
		Delete(&domain.Option{}).Error; err != nil {
		return MapError("quiz.delete_options", err)
	}
	return nil
}

func (qr *quizRepo) Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", quizID).
		Delete(&domain.Quiz{})
	if res.Error != nil {
		return 0, MapError("quiz.delete", res.Error)
	}
	return res.RowsAffected, nil
}

func (qr *quizRepo) CountByCategory(ctx context.Context, tx *gorm.DB, categoryID string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Quiz{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, MapError("quiz.count_by_category", err)
	}
	return count, nil
}

func (qr *quizRepo) CountByCreator(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Quiz{}).
		Where("created_by = ?", userID).
		Count(&count).Error; err != nil {
		return 0, MapError("quiz.count_by_creator", err)
	}
	return count, nil
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type QuizService interface {
	GetQuizzes(ctx context.Context) ([]*domain.Quiz, error)
	GetQuizByID(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error)
	SubmitQuiz(ctx context.Context, input QuizInput, userID uuid.UUID) error
	GetUserSubmissions(ctx context.Context, userID uuid.UUID) ([]*domain.Quiz, error)
	GetPendingQuizzes(ctx context.Context) ([]*domain.Quiz, error)
	UpdatePendingQuiz(ctx context.Context, quizID uuid.UUID, input QuizInput) error
	ApprovePendingQuiz(ctx context.Context, quizID, adminID uuid.UUID) error
	RejectPendingQuiz(ctx context.Context, quizID, adminID uuid.UUID, reason string) error
	CreateQuizAsAdmin(ctx context.Context, input QuizInput, adminID uuid.UUID) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID) error
}

type quizService struct {
	db           *gorm.DB
	log          *logger.Logger
	quizRepo     repos.QuizRepo
	categoryRepo repos.CategoryRepo
}

func NewQuizService(
	db *gorm.DB,
	log *logger.Logger,
	quizRepo repos.QuizRepo,
	categoryRepo repos.CategoryRepo,
) QuizService {
	serviceLog := log.With("service", "QuizService")
	return &quizService{
		db:           db,
		log:          serviceLog,
		quizRepo:     quizRepo,
		categoryRepo: categoryRepo,
	}
}

func (qs *quizService) GetQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	quizzes, err := qs.quizRepo.ListByStatus(ctx, nil, domain.QuizApproved)
	if err != nil {
		return nil, err
	}
	return qs.hydrate(ctx, nil, quizzes)
}

func (qs *quizService) GetQuizByID(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error) {
	quiz, err := qs.quizRepo.GetByIDWithStatus(ctx, nil, quizID, domain.QuizApproved)
	if err != nil {
		return nil, err
	}
	hydrated, err := qs.hydrate(ctx, nil, []*domain.Quiz{quiz})
	if err != nil {
		return nil, err
	}
	return hydrated[0], nil
}

func (qs *quizService) SubmitQuiz(ctx context.Context, input QuizInput, userID uuid.UUID) error {
	const op = "quiz.submit"

	normalized, err := qs.normalizeAndCheckCategory(ctx, op, input)
	if err != nil {
		return err
	}
	return qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return qs.insertAggregate(ctx, tx, normalized, userID, domain.QuizPending, nil)
	})
}

func (qs *quizService) GetUserSubmissions(ctx context.Context, userID uuid.UUID) ([]*domain.Quiz, error) {
	quizzes, err := qs.quizRepo.ListSubmissionsByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	return qs.hydrate(ctx, nil, quizzes)
}

func (qs *quizService) GetPendingQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	quizzes, err := qs.quizRepo.ListByStatus(ctx, nil, domain.QuizPending)
	if err != nil {
		return nil, err
	}
	return qs.hydrate(ctx, nil, quizzes)
}

// UpdatePendingQuiz transactionally replaces the whole aggregate. Editing
// an approved or rejected quiz reports not found, same as the approve race.
func (qs *quizService) UpdatePendingQuiz(ctx context.Context, quizID uuid.UUID, input QuizInput) error {
	const op = "quiz.update_pending"

	normalized, err := qs.normalizeAndCheckCategory(ctx, op, input)
	if err != nil {
		return err
	}
	return qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := qs.quizRepo.UpdatePendingFields(ctx, tx, quizID, normalized.Title, normalized.Description, normalized.CategoryID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFoundError(op, "pending quiz not found")
		}
		if err := qs.quizRepo.DeleteOptionsByQuizID(ctx, tx, quizID); err != nil {
			return err
		}
		if err := qs.quizRepo.DeleteQuestionsByQuizID(ctx, tx, quizID); err != nil {
			return err
		}
		return qs.insertQuestions(ctx, tx, quizID, normalized.Questions)
	})
}

func (qs *quizService) ApprovePendingQuiz(ctx context.Context, quizID, adminID uuid.UUID) error {
	const op = "quiz.approve"

	rows, err := qs.quizRepo.MarkApproved(ctx, nil, quizID, adminID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError(op, "pending quiz not found")
	}
	qs.log.Info("quiz approved", "quiz_id", quizID, "admin_id", adminID)
	return nil
}

func (qs *quizService) RejectPendingQuiz(ctx context.Context, quizID, adminID uuid.UUID, reason string) error {
	const op = "quiz.reject"

	trimmedReason, err := requireText(op, reason, "rejection reason", maxRejectionLen)
	if err != nil {
		return err
	}
	rows, err := qs.quizRepo.MarkRejected(ctx, nil, quizID, adminID, trimmedReason, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError(op, "pending quiz not found")
	}
	qs.log.Info("quiz rejected", "quiz_id", quizID, "admin_id", adminID)
	return nil
}

// CreateQuizAsAdmin skips the pending stage: the aggregate lands already
// approved with the creating admin stamped as reviewer.
func (qs *quizService) CreateQuizAsAdmin(ctx context.Context, input QuizInput, adminID uuid.UUID) (*domain.Quiz, error) {
	const op = "quiz.create_as_admin"

	normalized, err := qs.normalizeAndCheckCategory(ctx, op, input)
	if err != nil {
		return nil, err
	}

	var quizID uuid.UUID
	if err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := qs.insertAggregateReturning(ctx, tx, normalized, adminID, domain.QuizApproved, &adminID)
		if err != nil {
			return err
		}
		quizID = id
		return nil
	}); err != nil {
		return nil, err
	}

	return qs.GetQuizByID(ctx, quizID)
}

func (qs *quizService) DeleteQuiz(ctx context.Context, quizID uuid.UUID) error {
	const op = "quiz.delete"

	return qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := qs.quizRepo.DeleteOptionsByQuizID(ctx, tx, quizID); err != nil {
			return err
		}
		if err := qs.quizRepo.DeleteQuestionsByQuizID(ctx, tx, quizID); err != nil {
			return err
		}
		rows, err := qs.quizRepo.Delete(ctx, tx, quizID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFoundError(op, "quiz not found")
		}
		return nil
	})
}

func (qs *quizService) normalizeAndCheckCategory(ctx context.Context, op string, input QuizInput) (*normalizedQuiz, error) {
	normalized, err := normalizeQuiz(op, input)
	if err != nil {
		return nil, err
	}
	exists, err := qs.categoryRepo.Exists(ctx, nil, normalized.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFoundError(op, "category not found")
	}
	return normalized, nil
}

func (qs *quizService) insertAggregate(ctx context.Context, tx *gorm.DB, normalized *normalizedQuiz, createdBy uuid.UUID, status domain.QuizStatus, reviewedBy *uuid.UUID) error {
	_, err := qs.insertAggregateReturning(ctx, tx, normalized, createdBy, status, reviewedBy)
	return err
}

func (qs *quizService) insertAggregateReturning(ctx context.Context, tx *gorm.DB, normalized *normalizedQuiz, createdBy uuid.UUID, status domain.QuizStatus, reviewedBy *uuid.UUID) (uuid.UUID, error) {
	now := time.Now().UTC()
	quiz := &domain.Quiz{
		ID:          uuid.New(),
		Title:       normalized.Title,
		Description: normalized.Description,
		CategoryID:  normalized.CategoryID,
		CreatedBy:   createdBy,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if reviewedBy != nil {
		quiz.ReviewedBy = reviewedBy
		quiz.ReviewedAt = &now
	}
	if _, err := qs.quizRepo.Create(ctx, tx, quiz); err != nil {
		return uuid.Nil, err
	}
	if err := qs.insertQuestions(ctx, tx, quiz.ID, normalized.Questions); err != nil {
		return uuid.Nil, err
	}
	return quiz.ID, nil
}

// insertQuestions derives every position from array order so no stale
// ordering survives an edit.
func (qs *quizService) insertQuestions(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, inputs []QuestionInput) error {
	questions := make([]*domain.Question, 0, len(inputs))
	options := make([]*domain.Option, 0)
	for questionIndex, questionInput := range inputs {
		question := &domain.Question{
			ID:       uuid.New(),
			QuizID:   quizID,
			Prompt:   questionInput.Prompt,
			Position: questionIndex,
		}
		questions = append(questions, question)
		for optionIndex, optionInput := range questionInput.Options {
			options = append(options, &domain.Option{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Label:      optionInput.Label,
				IsCorrect:  optionInput.IsCorrect,
				Position:   optionIndex,
			})
		}
	}
	if err := qs.quizRepo.CreateQuestions(ctx, tx, questions); err != nil {
		return err
	}
	return qs.quizRepo.CreateOptions(ctx, tx, options)
}

// hydrate attaches questions and options, both already ordered by
// position from the repo queries.
func (qs *quizService) hydrate(ctx context.Context, tx *gorm.DB, quizzes []*domain.Quiz) ([]*domain.Quiz, error) {
	if len(quizzes) == 0 {
		return quizzes, nil
	}
	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	for _, quiz := range quizzes {
		quizIDs = append(quizIDs, quiz.ID)
	}
	questions, err := qs.quizRepo.LoadQuestions(ctx, tx, quizIDs)
	if err != nil {
		return nil, err
	}
	questionIDs := make([]uuid.UUID, 0, len(questions))
	for _, question := range questions {
		questionIDs = append(questionIDs, question.ID)
	}
	options, err := qs.quizRepo.LoadOptions(ctx, tx, questionIDs)
	if err != nil {
		return nil, err
	}

	optionsByQuestion := make(map[uuid.UUID][]*domain.Option, len(questions))
	for _, option := range options {
		optionsByQuestion[option.QuestionID] = append(optionsByQuestion[option.QuestionID], option)
	}
	questionsByQuiz := make(map[uuid.UUID][]*domain.Question, len(quizzes))
	for _, question := range questions {
		question.Options = optionsByQuestion[question.ID]
		if question.Options == nil {
			question.Options = []*domain.Option{}
		}
		questionsByQuiz[question.QuizID] = append(questionsByQuiz[question.QuizID], question)
	}
	for _, quiz := range quizzes {
		quiz.Questions = questionsByQuiz[quiz.ID]
		if quiz.Questions == nil {
			quiz.Questions = []*domain.Question{}
		}
	}
	return quizzes, nil
}

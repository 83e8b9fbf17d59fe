package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

type CreateUserInput struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type UserService interface {
	GetUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, userID, requesterID uuid.UUID) error
}

type userService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	sessionRepo repos.SessionRepo
	quizRepo    repos.QuizRepo
}

func NewUserService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	sessionRepo repos.SessionRepo,
	quizRepo repos.QuizRepo,
) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		quizRepo:    quizRepo,
	}
}

func (us *userService) GetUsers(ctx context.Context) ([]*domain.User, error) {
	return us.userRepo.List(ctx, nil)
}

func (us *userService) CreateUser(ctx context.Context, input CreateUserInput, role domain.Role) (*domain.User, error) {
	const op = "user.create"

	email, err := requireText(op, input.Email, "email", maxEmailLen)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	if err := validateEmail(op, email); err != nil {
		return nil, err
	}
	username, err := requireText(op, input.Username, "username", maxUsernameLen)
	if err != nil {
		return nil, err
	}
	if err := validateUsername(op, username); err != nil {
		return nil, err
	}
	password := strings.TrimSpace(input.Password)
	if err := validatePassword(op, password); err != nil {
		return nil, err
	}
	displayName, err := optionalText(op, input.DisplayName, maxUsernameLen)
	if err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = username
	}
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	salt, err := GenerateSalt()
	if err != nil {
		return nil, domain.Wrap(domain.CodeStorage, op, err)
	}
	passwordHash, err := HashPassword(password, salt, PasswordAlgoScrypt)
	if err != nil {
		return nil, domain.Wrap(domain.CodeStorage, op, err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		Role:         role,
		Salt:         salt,
		PasswordHash: passwordHash,
		PasswordAlgo: PasswordAlgoScrypt,
	}

	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emailTaken, err := us.userRepo.EmailExists(ctx, tx, email)
		if err != nil {
			return err
		}
		if emailTaken {
			return domain.ConflictError(op, "user already exists")
		}
		usernameTaken, err := us.userRepo.UsernameExists(ctx, tx, username)
		if err != nil {
			return err
		}
		if usernameTaken {
			return domain.ConflictError(op, "user already exists")
		}
		_, err = us.userRepo.Create(ctx, tx, user)
		return err
	}); err != nil {
		return nil, err
	}

	us.log.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID, requesterID uuid.UUID) error {
	const op = "user.delete"

	if userID == requesterID {
		return domain.ValidationError(op, "you cannot delete your own account")
	}

	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := us.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.Role == domain.RoleAdmin {
			adminCount, err := us.userRepo.CountAdmins(ctx, tx)
			if err != nil {
				return err
			}
			if adminCount <= 1 {
				return domain.ConflictError(op, "cannot delete the last admin")
			}
		}
		quizCount, err := us.quizRepo.CountByCreator(ctx, tx, userID)
		if err != nil {
			return err
		}
		if quizCount > 0 {
			return domain.ConflictError(op, "delete this user's quizzes first")
		}
		if err := us.sessionRepo.DeleteByUserID(ctx, tx, userID); err != nil {
			return err
		}
		rows, err := us.userRepo.Delete(ctx, tx, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NotFoundError(op, "user not found")
		}
		return nil
	})
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
)

// SessionToken is the only place the plaintext token exists server-side;
// it is handed to the client and forgotten.
type SessionToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService interface {
	RegisterUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	VerifyUser(ctx context.Context, identifier, password string) (*domain.User, error)
	CreateSession(ctx context.Context, userID uuid.UUID) (*SessionToken, error)
	GetUserBySession(ctx context.Context, token string) (*domain.User, error)
	RemoveSession(ctx context.Context, token string) error
	SessionTTL() time.Duration
}

type authService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	sessionRepo repos.SessionRepo
	userService UserService
	sessionTTL  time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	sessionRepo repos.SessionRepo,
	userService UserService,
	sessionTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		userService: userService,
		sessionTTL:  sessionTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	return as.userService.CreateUser(ctx, input, domain.RoleUser)
}

func (as *authService) VerifyUser(ctx context.Context, identifier, password string) (*domain.User, error) {
	const op = "auth.verify"

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	password = strings.TrimSpace(password)
	if identifier == "" || password == "" {
		return nil, domain.ValidationError(op, "invalid credentials")
	}

	user, err := as.userRepo.GetByIdentifier(ctx, nil, identifier)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, domain.ForbiddenError(op, "invalid credentials")
		}
		return nil, err
	}
	if !VerifyPassword(password, user.Salt, user.PasswordAlgo, user.PasswordHash) {
		return nil, domain.ForbiddenError(op, "invalid credentials")
	}
	return user, nil
}

// CreateSession issues a fresh opaque token and evicts every other session
// owned by the user inside the same transaction.
func (as *authService) CreateSession(ctx context.Context, userID uuid.UUID) (*SessionToken, error) {
	token := uuid.NewString()
	tokenHash := HashSessionToken(token)
	expiresAt := time.Now().Add(as.sessionTTL).UTC()

	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.sessionRepo.DeleteByUserID(ctx, tx, userID); err != nil {
			return err
		}
		_, err := as.sessionRepo.Create(ctx, tx, &domain.Session{
			TokenHash: tokenHash,
			UserID:    userID,
			ExpiresAt: expiresAt,
		})
		return err
	}); err != nil {
		return nil, err
	}

	as.log.Debug("session created", "user_id", userID, "expires_at", expiresAt)
	return &SessionToken{Token: token, ExpiresAt: expiresAt}, nil
}

// GetUserBySession resolves a token to its user. Expired sessions are
// deleted on the spot and resolve to nil (lazy expiry).
func (as *authService) GetUserBySession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	tokenHash := HashSessionToken(token)

	session, err := as.sessionRepo.GetByTokenHash(ctx, nil, tokenHash)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		if err := as.sessionRepo.DeleteByTokenHash(ctx, nil, tokenHash); err != nil {
			as.log.Warn("failed to delete expired session", "error", err)
		}
		return nil, nil
	}

	user, err := as.userRepo.GetByID(ctx, nil, session.UserID)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (as *authService) RemoveSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return as.sessionRepo.DeleteByTokenHash(ctx, nil, HashSessionToken(token))
}

func (as *authService) SessionTTL() time.Duration {
	return as.sessionTTL
}

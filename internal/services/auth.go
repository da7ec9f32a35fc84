package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/sbilibin2017/gw-bookmarks/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// SessionStore keeps server-side session state.
type SessionStore interface {
	Set(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context, id string) error
}

// SessionTokenGenerator signs a session id into a cookie token.
type SessionTokenGenerator interface {
	Generate(ctx context.Context, sessionID string) (string, error)
}

// AuthService handles sign-up, sign-in and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	hasher   PasswordHasher
	sessions SessionStore
	tokens   SessionTokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	sessions SessionStore,
	tokens SessionTokenGenerator,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		hasher:   hasher,
		sessions: sessions,
		tokens:   tokens,
	}
}

// SignUp registers a new user. A second sign-up with the same email fails
// with ErrUserAlreadyExists whatever the username or password.
func (svc *AuthService) SignUp(ctx context.Context, username, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return fmt.Errorf("check user exists: %w", err)
	}
	if user != nil {
		logger.Log.Infow("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return fmt.Errorf("hash password: %w", err)
	}

	if err := svc.writer.Save(ctx, username, email, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("user already exists (concurrent sign-up)", "email", email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

// SignIn verifies credentials, opens a new server-side session and
// returns the signed token for the session cookie.
func (svc *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return "", fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if !svc.hasher.Verify(user.PasswordHash, password) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	session := &models.Session{
		ID:       uuid.NewString(),
		UserID:   user.UserID,
		Username: user.Username,
	}
	if err := svc.sessions.Set(ctx, session); err != nil {
		logger.Log.Errorw("failed to store session", "user_id", user.UserID, "err", err)
		return "", fmt.Errorf("store session: %w", err)
	}

	token, err := svc.tokens.Generate(ctx, session.ID)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "user_id", user.UserID, "err", err)
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// Logout clears the server-side session. An empty id is a no-op.
func (svc *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := svc.sessions.Clear(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to clear session", "session_id", sessionID, "err", err)
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

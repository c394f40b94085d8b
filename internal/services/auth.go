package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hanbit-board/apiserver/internal/credential"
	"github.com/hanbit-board/apiserver/internal/mq"
	"github.com/hanbit-board/apiserver/internal/store"
	"github.com/hanbit-board/apiserver/internal/token"
	"github.com/hanbit-board/apiserver/types"
)

// AccountRepository defines persistence operations for user accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
}

// LoginRecordRepository defines persistence operations for the login
// audit trail.
type LoginRecordRepository interface {
	Append(ctx context.Context, record types.LoginRecord) (types.LoginRecord, error)
	Recent(ctx context.Context, userID string, limit int) ([]types.LoginRecord, error)
	CountByUser(ctx context.Context, start, end time.Time, limit int) ([]types.LoginCount, error)
}

// LoginPublisher fans successful logins out to a message broker.
type LoginPublisher interface {
	PublishLogin(ctx context.Context, event mq.LoginEvent) (string, error)
}

// AuthService orchestrates signup and login.
type AuthService struct {
	users     AccountRepository
	logins    LoginRecordRepository
	codec     *token.Codec
	publisher LoginPublisher
	logger    *slog.Logger
}

// NewAuthService constructs an AuthService. publisher may be nil, in
// which case login events are only written to the audit table.
func NewAuthService(
	users AccountRepository,
	logins LoginRecordRepository,
	codec *token.Codec,
	publisher LoginPublisher,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		users:     users,
		logins:    logins,
		codec:     codec,
		publisher: publisher,
		logger:    logger,
	}
}

// Signup creates a new account. The checks run in a fixed order:
// existence first, then password policy, then username policy, so a
// taken id reports a conflict even when the credentials are also
// malformed. A concurrent signup losing the insert race still surfaces
// as ErrAccountExists via the primary-key constraint.
func (s *AuthService) Signup(ctx context.Context, id, password, username string) (types.User, error) {
	if _, err := s.users.GetByID(ctx, id); err == nil {
		return types.User{}, ErrAccountExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, fmt.Errorf("check account: %w", err)
	}

	if err := credential.ValidatePassword(password); err != nil {
		return types.User{}, err
	}
	if err := credential.ValidateUsername(username); err != nil {
		return types.User{}, err
	}

	hash, err := credential.HashPassword(password)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, types.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.User{}, ErrAccountExists
		}
		return types.User{}, fmt.Errorf("create account: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues an access token. An unknown id
// and a wrong password both return ErrInvalidCredentials. The audit
// append and the broker publish are best-effort: failures are logged
// and never block token issuance.
func (s *AuthService) Login(ctx context.Context, id, password, clientIP string) (string, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("load account: %w", err)
	}

	if !credential.VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	loginTime := time.Now()
	if _, err := s.logins.Append(ctx, types.LoginRecord{
		UserID:    user.ID,
		IPAddress: clientIP,
		LoginTime: loginTime,
	}); err != nil {
		s.logger.Warn("login record append failed", "userId", user.ID, "error", err)
	}

	if s.publisher != nil {
		if _, err := s.publisher.PublishLogin(ctx, mq.LoginEvent{
			AccountID: user.ID,
			IPAddress: clientIP,
			LoginTime: loginTime,
		}); err != nil {
			s.logger.Warn("login event publish failed", "userId", user.ID, "error", err)
		}
	}

	accessToken, err := s.codec.Issue(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return accessToken, nil
}

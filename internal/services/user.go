package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-board/apiserver/internal/credential"
	"github.com/hanbit-board/apiserver/internal/ranking"
	"github.com/hanbit-board/apiserver/types"
)

const loginRecordLimit = 30

// UserService encapsulates account-profile and login-analytics
// use-cases.
type UserService struct {
	users  AccountRepository
	logins LoginRecordRepository
}

func NewUserService(users AccountRepository, logins LoginRecordRepository) *UserService {
	return &UserService{users: users, logins: logins}
}

// UpdateAccount changes the password and/or username of an account.
// Nil fields are left untouched; each supplied field is re-validated
// against the credential policy. Supplying neither field is a no-op.
func (s *UserService) UpdateAccount(ctx context.Context, id string, password, username *string) error {
	if password != nil {
		if err := credential.ValidatePassword(*password); err != nil {
			return err
		}
	}
	if username != nil {
		if err := credential.ValidateUsername(*username); err != nil {
			return err
		}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if password == nil && username == nil {
		return nil
	}

	if password != nil {
		hash, err := credential.HashPassword(*password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if username != nil {
		user.Username = *username
	}

	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// LoginRecords returns the caller's newest login records, capped at 30.
func (s *UserService) LoginRecords(ctx context.Context, userID string) ([]types.LoginRecord, error) {
	return s.logins.Recent(ctx, userID, loginRecordLimit)
}

// LoginRankings holds the weekly ranking and its window bounds.
type LoginRankings struct {
	Rankings  []ranking.Entry
	WeekStart time.Time
	WeekEnd   time.Time
}

// LoginRankings aggregates this week's login counts and ranks them.
// A week with no logins yields an empty rankings slice.
func (s *UserService) LoginRankings(ctx context.Context, now time.Time) (LoginRankings, error) {
	start, end := ranking.WeekWindow(now)

	counts, err := s.logins.CountByUser(ctx, start, end, ranking.Limit)
	if err != nil {
		return LoginRankings{}, fmt.Errorf("count logins: %w", err)
	}

	return LoginRankings{
		Rankings:  ranking.Rank(counts),
		WeekStart: start,
		WeekEnd:   end,
	}, nil
}

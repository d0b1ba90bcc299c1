package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

// AuthService runs the login ladder. Each rung fails fast with a typed
// error; account-state gates (banned, unverified) are only reachable
// after the password has been confirmed, so a banned user probing with
// a wrong password still sees plain invalid-credentials.
type AuthService struct {
	Users UserDirectory
	Log   *slog.Logger
}

func NewAuthService(users UserDirectory, log *slog.Logger) *AuthService {
	return &AuthService{Users: users, Log: log}
}

// Login validates credentials and account state and returns the user to
// mint a session token for.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrBadRequest
	}
	email = strings.ToLower(email)

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			// externally identical to a wrong password
			return nil, apperrors.ErrInvalidEmail
		}
		s.Log.Error("login lookup failed", "error", err)
		return nil, apperrors.ErrInternal
	}

	if err := CheckPassword(password, u.PasswordHash); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if u.AccessLevel == model.LevelBanned {
		return nil, apperrors.ErrUserBanned
	}
	if !u.EmailVerified {
		return nil, apperrors.ErrEmailUnverified
	}

	if err := s.Users.TouchLastLogin(ctx, u.ID); err != nil {
		// advisory only, the login itself succeeded
		s.Log.Warn("could not update last login", "user", u.ID, "error", err)
	}

	return u, nil
}

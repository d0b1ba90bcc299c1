package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegistrationService owns the two-phase signup: seal the whole form
// into an emailed token, and only create a row once the link is
// followed. Until then the pending account exists nowhere but inside
// the token itself.
type RegistrationService struct {
	Users  UserDirectory
	Codec  *RegistrationCodec
	Mailer EmailSender
	Log    *slog.Logger

	// BaseURL is the public origin the verification link points at.
	BaseURL string
	// DefaultLevel is the tier granted on successful verification.
	DefaultLevel model.AccessLevel
}

func NewRegistrationService(users UserDirectory, codec *RegistrationCodec, mailer EmailSender, log *slog.Logger, baseURL string, defaultLevel model.AccessLevel) *RegistrationService {
	return &RegistrationService{
		Users:        users,
		Codec:        codec,
		Mailer:       mailer,
		Log:          log,
		BaseURL:      baseURL,
		DefaultLevel: defaultLevel,
	}
}

// Signup checks for a confirmed account, seals the pending registration
// and mails the verification link. A *pending* signup for the same
// email does not block a retry; only a confirmed row does.
func (s *RegistrationService) Signup(ctx context.Context, req SignupRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.ErrBadRequest
	}
	email := strings.ToLower(req.Email)

	exists, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		s.Log.Error("signup email lookup failed", "error", err)
		return apperrors.ErrInternal
	}
	if exists {
		return apperrors.ErrEmailConflict
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	token, err := s.Codec.Seal(model.RegistrationPayload{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		s.Log.Error("could not seal registration token", "error", err)
		return apperrors.ErrInternal
	}

	link := s.BaseURL + "/api/v1/register/verify?token=" + url.QueryEscape(token)
	if err := s.Mailer.SendVerificationEmail(ctx, email, link); err != nil {
		s.Log.Error("verification email failed", "email", email, "error", err)
		return apperrors.ErrInternal
	}
	return nil
}

// Verify opens the emailed token and persists the account. The insert
// is conditional on the email being absent, which both resolves the
// two-concurrent-signups race and makes token replay harmless: the
// second write reports a conflict instead of overwriting.
func (s *RegistrationService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrBadRequest
	}

	p, err := s.Codec.Open(token)
	if err != nil {
		return apperrors.ErrBadRequest
	}

	now := time.Now()
	u := &model.User{
		ID:            uuid.New(),
		Email:         p.Email,
		PasswordHash:  p.PasswordHash,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		AccessLevel:   s.DefaultLevel,
		EmailVerified: true,
		JoinedAt:      &now,
	}

	if err := s.Users.CreateVerified(ctx, u); err != nil {
		if errors.Is(err, apperrors.ErrEmailConflict) {
			return apperrors.ErrEmailConflict
		}
		s.Log.Error("could not persist verified account", "error", err)
		return apperrors.ErrInternal
	}
	return nil
}

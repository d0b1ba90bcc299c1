package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

// Claims is the session token payload. Self-contained and signed, never
// stored server-side: the expiry is the only thing bounding a session.
type Claims struct {
	UserID      uuid.UUID         `json:"uid"`
	AccessLevel model.AccessLevel `json:"accessLevel"`
	Email       string            `json:"email"`
	jwt.RegisteredClaims
}

// SessionCodec mints and validates session tokens with a server-held
// HS256 secret.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), ttl: ttl}
}

// Generate creates a signed token for the given user.
func (s *SessionCodec) Generate(u *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      u.ID,
		AccessLevel: u.AccessLevel,
		Email:       u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "clark-api",
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse validates the token signature and expiry. All failure modes
// (tampered, malformed, expired, wrong algorithm) collapse into
// apperrors.ErrUnauthorized; tier checking is the caller's job.
func (s *SessionCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pynappo/Clark/internal/apperrors"
)

// HashPassword produces a salted one-way digest. bcrypt generates a
// fresh salt per call, so hashing the same password twice yields two
// different digests that both verify.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperrors.ErrBadRequest
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword compares cleartext against a stored digest in constant
// time. A mismatch is ErrInvalidCredentials; anything else (corrupt
// hash) surfaces as-is.
func CheckPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}
	return nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynappo/Clark/internal/apperrors"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "hunter22")

	assert.NoError(t, CheckPassword("hunter22", hash))
	assert.ErrorIs(t, CheckPassword("hunter23", hash), apperrors.ErrInvalidCredentials)
}

func TestHashPasswordFreshSaltEachCall(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NoError(t, CheckPassword("same password", h1))
	assert.NoError(t, CheckPassword("same password", h2))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCheckPasswordCorruptHash(t *testing.T) {
	err := CheckPassword("whatever", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

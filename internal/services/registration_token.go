package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

// RegistrationCodec seals a pending signup into an opaque token and
// opens it again. Unlike session tokens the payload carries a password
// hash, so signing alone is not enough: AES-256-GCM gives both
// confidentiality and tamper detection with the one server secret.
type RegistrationCodec struct {
	key [32]byte
	ttl time.Duration
}

func NewRegistrationCodec(secret string, ttl time.Duration) *RegistrationCodec {
	return &RegistrationCodec{key: sha256.Sum256([]byte(secret)), ttl: ttl}
}

// Seal encrypts the payload under a random nonce and returns
// base64url(nonce || ciphertext). The expiry rides inside the sealed
// payload so it cannot be stripped.
func (r *RegistrationCodec) Seal(p model.RegistrationPayload) (string, error) {
	p.ExpiresAt = time.Now().Add(r.ttl)

	plaintext, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(r.key[:])
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts and validates a token. Tampered, truncated, garbage and
// expired tokens all fail the same way; the caller cannot learn which.
func (r *RegistrationCodec) Open(token string) (*model.RegistrationPayload, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	block, err := aes.NewCipher(r.key[:])
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < aesgcm.NonceSize() {
		return nil, apperrors.ErrBadRequest
	}
	nonce, ciphertext := sealed[:aesgcm.NonceSize()], sealed[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var p model.RegistrationPayload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, apperrors.ErrBadRequest
	}
	if time.Now().After(p.ExpiresAt) {
		return nil, apperrors.ErrBadRequest
	}
	return &p, nil
}

package model

import "time"

// RegistrationPayload is the entire pending signup. It is never persisted;
// it only exists sealed inside the emailed verification token, so an
// unconfirmed account leaves no row behind.
type RegistrationPayload struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

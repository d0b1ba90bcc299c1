// Package apperrors defines the error kinds the API exposes. Every error
// maps to exactly one HTTP status and one stable machine-readable kind;
// collaborator detail (SQL errors, mailer output) never reaches a client.
package apperrors

import (
	"errors"
	"net/http"
)

type Error struct {
	Kind   string
	Status int
	msg    string
}

func (e *Error) Error() string { return e.msg }

var (
	ErrBadRequest = &Error{Kind: "bad_request", Status: http.StatusBadRequest, msg: "bad request"}

	// ErrInvalidEmail and ErrInvalidCredentials are distinct values so
	// logs can tell an unknown email from a wrong password, but they
	// share a kind and status: a login failure must not reveal whether
	// the account exists.
	ErrInvalidEmail       = &Error{Kind: "invalid_credentials", Status: http.StatusUnauthorized, msg: "invalid credentials"}
	ErrInvalidCredentials = &Error{Kind: "invalid_credentials", Status: http.StatusUnauthorized, msg: "invalid credentials"}

	ErrUserBanned      = &Error{Kind: "user_banned", Status: http.StatusForbidden, msg: "account is banned"}
	ErrEmailUnverified = &Error{Kind: "email_unverified", Status: http.StatusForbidden, msg: "email address not verified"}

	ErrUnauthorized = &Error{Kind: "unauthorized", Status: http.StatusUnauthorized, msg: "invalid or expired token"}
	ErrForbidden    = &Error{Kind: "forbidden", Status: http.StatusForbidden, msg: "insufficient privileges"}

	ErrEmailConflict = &Error{Kind: "email_conflict", Status: http.StatusConflict, msg: "email already registered"}
	ErrItemNotFound  = &Error{Kind: "not_found", Status: http.StatusNotFound, msg: "item not found"}
	ErrInternal      = &Error{Kind: "internal", Status: http.StatusInternalServerError, msg: "internal server error"}
)

// From extracts the *Error from err's chain, falling back to ErrInternal
// so an unclassified failure never leaks its text.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal
}

func StatusOf(err error) int { return From(err).Status }

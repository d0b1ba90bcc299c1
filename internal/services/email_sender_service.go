package services

import "context"

// EmailSender delivers the registration verification link. Implemented
// by external/resend; tests use a recording fake.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error
}

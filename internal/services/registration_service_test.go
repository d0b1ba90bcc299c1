package services

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

func newRegistrationService(dir *fakeDirectory, mailer *fakeMailer) *RegistrationService {
	codec := NewRegistrationCodec("test-secret", time.Minute)
	return NewRegistrationService(dir, codec, mailer, testLogger(), "http://localhost:8080", model.LevelNonMember)
}

func signup() SignupRequest {
	return SignupRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@club.dev",
		Password:  "cobol4ever",
	}
}

// tokenFromLink extracts the sealed token out of the mailed URL.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestSignupSendsVerificationLink(t *testing.T) {
	dir := newFakeDirectory()
	mailer := &fakeMailer{}
	svc := newRegistrationService(dir, mailer)

	require.NoError(t, svc.Signup(context.Background(), signup()))

	assert.Equal(t, "grace@club.dev", mailer.to)
	assert.True(t, strings.HasPrefix(mailer.link, "http://localhost:8080/api/v1/register/verify?token="))

	// nothing persisted yet, the token is the only pending state
	exists, err := dir.ExistsByEmail(context.Background(), "grace@club.dev")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSignupMissingFields(t *testing.T) {
	svc := newRegistrationService(newFakeDirectory(), &fakeMailer{})

	for _, req := range []SignupRequest{
		{LastName: "H", Email: "g@c.d", Password: "pw"},
		{FirstName: "G", Email: "g@c.d", Password: "pw"},
		{FirstName: "G", LastName: "H", Password: "pw"},
		{FirstName: "G", LastName: "H", Email: "g@c.d"},
	} {
		assert.ErrorIs(t, svc.Signup(context.Background(), req), apperrors.ErrBadRequest)
	}
}

func TestSignupConflictsWithConfirmedAccount(t *testing.T) {
	existing := verifiedUser(t, "grace@club.dev", "pw", model.LevelMember)
	svc := newRegistrationService(newFakeDirectory(existing), &fakeMailer{})

	err := svc.Signup(context.Background(), signup())
	assert.ErrorIs(t, err, apperrors.ErrEmailConflict)
}

func TestVerifyCreatesAccount(t *testing.T) {
	dir := newFakeDirectory()
	mailer := &fakeMailer{}
	svc := newRegistrationService(dir, mailer)

	require.NoError(t, svc.Signup(context.Background(), signup()))
	token := tokenFromLink(t, mailer.link)

	require.NoError(t, svc.Verify(context.Background(), token))

	u, err := dir.GetByEmail(context.Background(), "grace@club.dev")
	require.NoError(t, err)
	assert.True(t, u.EmailVerified)
	assert.Equal(t, model.LevelNonMember, u.AccessLevel)
	assert.Equal(t, "Grace", u.FirstName)
	assert.Equal(t, "Hopper", u.LastName)
	assert.NoError(t, CheckPassword("cobol4ever", u.PasswordHash))
}

func TestVerifyGarbageTokenCreatesNothing(t *testing.T) {
	dir := newFakeDirectory()
	svc := newRegistrationService(dir, &fakeMailer{})

	assert.ErrorIs(t, svc.Verify(context.Background(), "garbage"), apperrors.ErrBadRequest)
	assert.ErrorIs(t, svc.Verify(context.Background(), ""), apperrors.ErrBadRequest)

	exists, err := dir.ExistsByEmail(context.Background(), "grace@club.dev")
	require.NoError(t, err)
	assert.False(t, exists)
}

// Two signups for the same unconfirmed email both get valid tokens; the
// conditional insert lets exactly one of them create the account.
func TestVerifyRaceLoserGetsConflict(t *testing.T) {
	dir := newFakeDirectory()
	mailer := &fakeMailer{}
	svc := newRegistrationService(dir, mailer)

	require.NoError(t, svc.Signup(context.Background(), signup()))
	first := tokenFromLink(t, mailer.link)

	require.NoError(t, svc.Signup(context.Background(), signup()))
	second := tokenFromLink(t, mailer.link)
	require.NotEqual(t, first, second)

	require.NoError(t, svc.Verify(context.Background(), first))
	assert.ErrorIs(t, svc.Verify(context.Background(), second), apperrors.ErrEmailConflict)

	// replaying the winning token is a conflict too, not an overwrite
	assert.ErrorIs(t, svc.Verify(context.Background(), first), apperrors.ErrEmailConflict)
}

func TestSignupAfterVerificationConflicts(t *testing.T) {
	dir := newFakeDirectory()
	mailer := &fakeMailer{}
	svc := newRegistrationService(dir, mailer)

	require.NoError(t, svc.Signup(context.Background(), signup()))
	require.NoError(t, svc.Verify(context.Background(), tokenFromLink(t, mailer.link)))

	assert.ErrorIs(t, svc.Signup(context.Background(), signup()), apperrors.ErrEmailConflict)
}

func TestSignupLowercasesEmail(t *testing.T) {
	dir := newFakeDirectory()
	mailer := &fakeMailer{}
	svc := newRegistrationService(dir, mailer)

	req := signup()
	req.Email = "Grace@Club.DEV"
	require.NoError(t, svc.Signup(context.Background(), req))
	assert.Equal(t, "grace@club.dev", mailer.to)

	require.NoError(t, svc.Verify(context.Background(), tokenFromLink(t, mailer.link)))
	_, err := dir.GetByEmail(context.Background(), "grace@club.dev")
	assert.NoError(t, err)
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

func member(level model.AccessLevel) *model.User {
	return &model.User{
		ID:            uuid.New(),
		Email:         uuid.NewString() + "@club.dev",
		AccessLevel:   level,
		EmailVerified: true,
	}
}

func actor(u *model.User) Actor {
	return Actor{ID: u.ID, AccessLevel: u.AccessLevel}
}

func TestEditSelfAllowedBelowOfficer(t *testing.T) {
	self := member(model.LevelNonMember)
	svc := NewUserService(newFakeDirectory(self), testLogger())

	err := svc.Edit(context.Background(), actor(self), self.ID, map[string]any{"firstName": "New"})
	require.NoError(t, err)

	got, err := svc.Users.GetByID(context.Background(), self.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
}

func TestEditOtherForbiddenBelowOfficer(t *testing.T) {
	self := member(model.LevelNonMember)
	other := member(model.LevelNonMember)
	svc := NewUserService(newFakeDirectory(self, other), testLogger())

	err := svc.Edit(context.Background(), actor(self), other.ID, map[string]any{"firstName": "New"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestEditOtherAllowedForOfficer(t *testing.T) {
	officer := member(model.LevelOfficer)
	other := member(model.LevelNonMember)
	svc := NewUserService(newFakeDirectory(officer, other), testLogger())

	err := svc.Edit(context.Background(), actor(officer), other.ID, map[string]any{"firstName": "New"})
	assert.NoError(t, err)
}

func TestEditUnknownFieldsSilentlyIgnored(t *testing.T) {
	officer := member(model.LevelOfficer)
	other := member(model.LevelNonMember)
	svc := NewUserService(newFakeDirectory(officer, other), testLogger())

	err := svc.Edit(context.Background(), actor(officer), other.ID, map[string]any{
		"firstName":    "New",
		"passwordHash": "sneaky", // not allow-listed
		"doorCode":     "0000",   // not allow-listed
	})
	require.NoError(t, err)

	got, err := svc.Users.GetByID(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	assert.Empty(t, got.PasswordHash)
	assert.Empty(t, got.DoorCode)
}

func TestEditOnlyUnknownFieldsIsBadRequest(t *testing.T) {
	officer := member(model.LevelOfficer)
	svc := NewUserService(newFakeDirectory(officer), testLogger())

	err := svc.Edit(context.Background(), actor(officer), officer.ID, map[string]any{"doorCode": "0000"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestEditWrongTypeIsBadRequest(t *testing.T) {
	officer := member(model.LevelOfficer)
	svc := NewUserService(newFakeDirectory(officer), testLogger())

	for _, updates := range []map[string]any{
		{"firstName": 42.0},
		{"emailVerified": "yes"},
		{"pagesPrinted": "ten"},
		{"membershipValidUntil": "not-a-date"},
	} {
		err := svc.Edit(context.Background(), actor(officer), officer.ID, updates)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	}
}

func TestEditAccessLevelRules(t *testing.T) {
	tests := []struct {
		name     string
		actor    model.AccessLevel
		target   model.AccessLevel
		newLevel model.AccessLevel
		self     bool
		wantErr  error
	}{
		{"non-member cannot raise own tier", model.LevelNonMember, model.LevelNonMember, model.LevelOfficer, true, apperrors.ErrForbidden},
		{"officer promotes to member", model.LevelOfficer, model.LevelNonMember, model.LevelMember, false, nil},
		{"officer promotes to officer", model.LevelOfficer, model.LevelMember, model.LevelOfficer, false, nil},
		{"officer cannot grant admin", model.LevelOfficer, model.LevelMember, model.LevelAdmin, false, apperrors.ErrForbidden},
		{"admin grants admin", model.LevelAdmin, model.LevelOfficer, model.LevelAdmin, false, nil},
		{"officer can ban", model.LevelOfficer, model.LevelNonMember, model.LevelBanned, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := member(tt.actor)
			target := a
			if !tt.self {
				target = member(tt.target)
			}
			svc := NewUserService(newFakeDirectory(a, target), testLogger())

			err := svc.Edit(context.Background(), actor(a), target.ID, map[string]any{
				"accessLevel": float64(tt.newLevel),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				got, err := svc.Users.GetByID(context.Background(), target.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.newLevel, got.AccessLevel)
			}
		})
	}
}

func TestEditMissingTarget(t *testing.T) {
	officer := member(model.LevelOfficer)
	svc := NewUserService(newFakeDirectory(officer), testLogger())

	err := svc.Edit(context.Background(), actor(officer), uuid.New(), map[string]any{"firstName": "X"})
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestGetScoping(t *testing.T) {
	self := member(model.LevelNonMember)
	other := member(model.LevelNonMember)
	officer := member(model.LevelOfficer)
	svc := NewUserService(newFakeDirectory(self, other, officer), testLogger())

	_, err := svc.Get(context.Background(), actor(self), self.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), actor(self), other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Get(context.Background(), actor(officer), other.ID)
	assert.NoError(t, err)
}

func TestDeleteScoping(t *testing.T) {
	officer := member(model.LevelOfficer)
	admin := member(model.LevelAdmin)
	regular := member(model.LevelMember)
	svc := NewUserService(newFakeDirectory(officer, admin, regular), testLogger())

	// nobody may delete an account above their own tier
	err := svc.Delete(context.Background(), actor(officer), admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// non-officer may only delete themselves
	err = svc.Delete(context.Background(), actor(regular), officer.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.NoError(t, svc.Delete(context.Background(), actor(regular), regular.ID))

	assert.NoError(t, svc.Delete(context.Background(), actor(admin), officer.ID))
}

func TestListPagination(t *testing.T) {
	users := make([]*model.User, 0, 45)
	for i := 0; i < 45; i++ {
		users = append(users, member(model.LevelMember))
	}
	svc := NewUserService(newFakeDirectory(users...), testLogger())

	page, err := svc.List(context.Background(), "", 0, "joinedAt", "desc")
	require.NoError(t, err)
	assert.Len(t, page.Items, 20)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 20, page.RowsPerPage)

	last, err := svc.List(context.Background(), "", 2, "joinedAt", "desc")
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)
}

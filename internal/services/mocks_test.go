package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

// fakeDirectory is an in-memory UserDirectory with the same conditional
// insert semantics as the real repository.
type fakeDirectory struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeDirectory(users ...*model.User) *fakeDirectory {
	d := &fakeDirectory{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func (d *fakeDirectory) GetByEmail(_ context.Context, email string) (*model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrItemNotFound
}

func (d *fakeDirectory) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	if !ok {
		return nil, apperrors.ErrItemNotFound
	}
	copied := *u
	return &copied, nil
}

func (d *fakeDirectory) ExistsByEmail(_ context.Context, email string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (d *fakeDirectory) CreateVerified(_ context.Context, u *model.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailConflict
		}
	}
	copied := *u
	d.users[u.ID] = &copied
	return nil
}

func (d *fakeDirectory) Update(_ context.Context, id uuid.UUID, updates map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	if !ok {
		return apperrors.ErrItemNotFound
	}
	for col, val := range updates {
		switch col {
		case "first_name":
			u.FirstName = val.(string)
		case "last_name":
			u.LastName = val.(string)
		case "access_level":
			u.AccessLevel = model.AccessLevel(val.(int))
		case "email_verified":
			u.EmailVerified = val.(bool)
		case "email_opt_in":
			u.EmailOptIn = val.(bool)
		case "pages_printed":
			u.PagesPrinted = val.(int)
		case "major":
			u.Major = val.(string)
		case "discord_username":
			u.DiscordUsername = val.(string)
		}
	}
	return nil
}

func (d *fakeDirectory) Delete(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[id]; !ok {
		return apperrors.ErrItemNotFound
	}
	delete(d.users, id)
	return nil
}

func (d *fakeDirectory) List(_ context.Context, search string, limit, offset int, _, _ string) ([]model.User, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	matched := []model.User{}
	for _, u := range d.users {
		if search == "" || strings.Contains(u.Email, search) ||
			strings.Contains(u.FirstName, search) || strings.Contains(u.LastName, search) {
			matched = append(matched, *u)
		}
	}
	total := len(matched)
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (d *fakeDirectory) Count(ctx context.Context, search string) (int, error) {
	_, total, err := d.List(ctx, search, 0, 0, "", "")
	return total, err
}

func (d *fakeDirectory) TouchLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

// fakeMailer records the last verification email instead of sending it.
type fakeMailer struct {
	to   string
	link string
	err  error
}

func (m *fakeMailer) SendVerificationEmail(_ context.Context, toEmail, verifyURL string) error {
	if m.err != nil {
		return m.err
	}
	m.to = toEmail
	m.link = verifyURL
	return nil
}

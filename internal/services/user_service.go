package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

// Actor identifies who is making a request, as decoded from their
// session token.
type Actor struct {
	ID          uuid.UUID
	AccessLevel model.AccessLevel
}

const rowsPerPage = 20

type UserService struct {
	Users UserDirectory
	Log   *slog.Logger
}

func NewUserService(users UserDirectory, log *slog.Logger) *UserService {
	return &UserService{Users: users, Log: log}
}

// editableField describes one allow-listed update key: how to validate
// its JSON value and which column it lands in. Keys outside the list
// are silently dropped, never errored.
type editableField struct {
	column  string
	convert func(v any) (any, bool)
}

func asString(v any) (any, bool) { s, ok := v.(string); return s, ok }
func asBool(v any) (any, bool)   { b, ok := v.(bool); return b, ok }
func asInt(v any) (any, bool) {
	// JSON numbers decode as float64
	f, ok := v.(float64)
	return int(f), ok
}
func asTime(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

var editableFields = map[string]editableField{
	"firstName":            {"first_name", asString},
	"lastName":             {"last_name", asString},
	"emailVerified":        {"email_verified", asBool},
	"discordUsername":      {"discord_username", asString},
	"emailOptIn":           {"email_opt_in", asBool},
	"discordDiscrim":       {"discord_discrim", asString},
	"discordID":            {"discord_id", asString},
	"major":                {"major", asString},
	"accessLevel":          {"access_level", asInt},
	"pagesPrinted":         {"pages_printed", asInt},
	"membershipValidUntil": {"membership_valid_until", asTime},
}

// Edit applies allow-listed updates to the target record. Two scoping
// rules sit on top of the coarse tier gate: below officer you may only
// touch your own record and may not move your own tier, and an officer
// may not hand out a tier above their own nor grant admin.
func (s *UserService) Edit(ctx context.Context, actor Actor, targetID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return apperrors.ErrBadRequest
	}

	if !actor.AccessLevel.AtLeast(model.LevelOfficer) && targetID != actor.ID {
		return apperrors.ErrForbidden
	}

	sanitized := map[string]any{}
	for key, raw := range updates {
		field, ok := editableFields[key]
		if !ok {
			continue
		}
		val, ok := field.convert(raw)
		if !ok {
			return apperrors.ErrBadRequest
		}
		sanitized[field.column] = val
	}
	if len(sanitized) == 0 {
		return apperrors.ErrBadRequest
	}

	if lvl, ok := sanitized["access_level"]; ok {
		newLevel := model.AccessLevel(lvl.(int))
		switch {
		case !actor.AccessLevel.AtLeast(model.LevelOfficer) && newLevel != actor.AccessLevel:
			return apperrors.ErrForbidden
		case newLevel > actor.AccessLevel:
			return apperrors.ErrForbidden
		case newLevel >= model.LevelAdmin && actor.AccessLevel < model.LevelAdmin:
			return apperrors.ErrForbidden
		}
	}

	return s.Users.Update(ctx, targetID, sanitized)
}

// Get returns a single record; non-officers may only read their own.
func (s *UserService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*model.User, error) {
	if !actor.AccessLevel.AtLeast(model.LevelOfficer) && id != actor.ID {
		return nil, apperrors.ErrForbidden
	}
	return s.Users.GetByID(ctx, id)
}

// Delete removes a record. Non-officers may only delete themselves, and
// nobody may delete an account above their own tier.
func (s *UserService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.AccessLevel.AtLeast(model.LevelOfficer) && id != actor.ID {
		return apperrors.ErrForbidden
	}

	target, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.AccessLevel > actor.AccessLevel {
		return apperrors.ErrForbidden
	}

	return s.Users.Delete(ctx, id)
}

type UserPage struct {
	Items       []model.User `json:"items"`
	Total       int          `json:"total"`
	RowsPerPage int          `json:"rowsPerPage"`
}

// List returns one page of members matching the search.
func (s *UserService) List(ctx context.Context, search string, page int, sortColumn, order string) (*UserPage, error) {
	if page < 0 {
		page = 0
	}
	items, total, err := s.Users.List(ctx, search, rowsPerPage, page*rowsPerPage, sortColumn, order)
	if err != nil {
		s.Log.Error("user list failed", "error", err)
		return nil, apperrors.ErrInternal
	}
	return &UserPage{Items: items, Total: total, RowsPerPage: rowsPerPage}, nil
}

func (s *UserService) Count(ctx context.Context, search string) (int, error) {
	n, err := s.Users.Count(ctx, search)
	if err != nil {
		s.Log.Error("user count failed", "error", err)
		return 0, apperrors.ErrInternal
	}
	return n, nil
}

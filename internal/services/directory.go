package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pynappo/Clark/internal/model"
)

// UserDirectory is the persistent store of confirmed accounts.
// Implemented by repository.UserRepository; tests swap in a fake.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateVerified inserts a confirmed account, conditionally on the
	// email being absent. The losing writer of a verification race gets
	// apperrors.ErrEmailConflict.
	CreateVerified(ctx context.Context, u *model.User) error

	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int, sortColumn, order string) ([]model.User, int, error)
	Count(ctx context.Context, search string) (int, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

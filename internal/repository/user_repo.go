package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, access_level,
	email_verified, email_opt_in, discord_username, discord_discrim, discord_id,
	major, door_code, api_key, pages_printed, membership_valid_until, joined_at, last_login`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.AccessLevel,
		&u.EmailVerified, &u.EmailOptIn, &u.DiscordUsername, &u.DiscordDiscrim, &u.DiscordID,
		&u.Major, &u.DoorCode, &u.APIKey, &u.PagesPrinted, &u.MembershipValidUntil, &u.JoinedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.DB.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.DB.QueryRow(ctx, query, id))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateVerified inserts a confirmed account if and only if the email
// is still free. Two racing verification links both reach this insert;
// the unique email makes exactly one of them win and the loser gets
// ErrEmailConflict instead of a duplicate or an overwrite.
func (r *UserRepository) CreateVerified(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name,
			access_level, email_verified, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := r.DB.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.AccessLevel, u.EmailVerified, u.JoinedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmailConflict
	}
	return nil
}

// Update applies a column->value map built by the service allow-list.
// Column names never come from user input.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return apperrors.ErrBadRequest
	}

	sets := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	args = append(args, id)
	for col, val := range updates {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id=$1`
	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

var userSortColumns = map[string]string{
	"joinedAt":     "joined_at",
	"firstName":    "first_name",
	"lastName":     "last_name",
	"email":        "email",
	"accessLevel":  "access_level",
	"pagesPrinted": "pages_printed",
}

// List returns one page of accounts with the total match count.
// Password hashes are omitted from listings.
func (r *UserRepository) List(ctx context.Context, search string, limit, offset int, sortColumn, order string) ([]model.User, int, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	total := 0
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := userSortColumns[sortColumn]
	if !ok {
		col = "joined_at"
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, email, first_name, last_name, access_level, email_verified,
			email_opt_in, discord_username, major, pages_printed,
			membership_valid_until, joined_at, last_login
		FROM users%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, col, dir, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.AccessLevel, &u.EmailVerified,
			&u.EmailOptIn, &u.DiscordUsername, &u.Major, &u.PagesPrinted,
			&u.MembershipValidUntil, &u.JoinedAt, &u.LastLogin); err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context, search string) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1`
	var n int
	if err := r.DB.QueryRow(ctx, query, "%"+search+"%").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `UPDATE users SET last_login=$1 WHERE id=$2`, time.Now(), id)
	return err
}

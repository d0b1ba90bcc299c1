package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
)

type FoodRepository struct {
	DB *pgxpool.Pool
}

func NewFoodRepository(db *pgxpool.Pool) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(ctx context.Context, f *model.FoodItem) (int64, error) {
	var id int64
	query := `INSERT INTO food (name, photo_url, price, quantity, expiration, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING foodid`
	if err := r.DB.QueryRow(ctx, query, f.Name, f.PhotoURL, f.Price, f.Quantity, f.Expiration, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *FoodRepository) GetByID(ctx context.Context, id int64) (*model.FoodItem, error) {
	var f model.FoodItem
	query := `
		SELECT foodid, name, photo_url, price, quantity, expiration, created_at, deleted_at
		FROM food
		WHERE foodid=$1 AND deleted_at IS NULL
	`
	if err := r.DB.
		QueryRow(ctx, query, id).
		Scan(&f.FoodID, &f.Name, &f.PhotoURL, &f.Price, &f.Quantity, &f.Expiration, &f.CreatedAt, &f.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) List(ctx context.Context) ([]model.FoodItem, error) {
	query := `SELECT foodid, name, photo_url, price, quantity, expiration, created_at, deleted_at FROM food WHERE deleted_at IS NULL ORDER BY foodid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.FoodItem
	for rows.Next() {
		var f model.FoodItem
		if err := rows.Scan(&f.FoodID, &f.Name, &f.PhotoURL, &f.Price, &f.Quantity, &f.Expiration, &f.CreatedAt, &f.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *FoodRepository) Update(ctx context.Context, f *model.FoodItem) error {
	query := `UPDATE food SET name=$1, photo_url=$2, price=$3, quantity=$4, expiration=$5 WHERE foodid=$6 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, f.Name, f.PhotoURL, f.Price, f.Quantity, f.Expiration, f.FoodID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

func (r *FoodRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE food SET deleted_at=$1 WHERE foodid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

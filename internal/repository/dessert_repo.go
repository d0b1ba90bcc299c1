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

type DessertRepository struct {
	DB *pgxpool.Pool
}

func NewDessertRepository(db *pgxpool.Pool) *DessertRepository {
	return &DessertRepository{DB: db}
}

func (r *DessertRepository) Create(ctx context.Context, d *model.Dessert) (int64, error) {
	var id int64
	query := `INSERT INTO desserts (title, description, rating, created_at) VALUES ($1, $2, $3, $4) RETURNING dessertid`
	if err := r.DB.QueryRow(ctx, query, d.Title, d.Description, d.Rating, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DessertRepository) GetByID(ctx context.Context, id int64) (*model.Dessert, error) {
	var d model.Dessert
	query := `SELECT dessertid, title, description, rating, created_at, deleted_at FROM desserts WHERE dessertid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&d.DessertID, &d.Title, &d.Description, &d.Rating, &d.CreatedAt, &d.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DessertRepository) List(ctx context.Context) ([]model.Dessert, error) {
	query := `SELECT dessertid, title, description, rating, created_at, deleted_at FROM desserts WHERE deleted_at IS NULL ORDER BY dessertid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Dessert
	for rows.Next() {
		var d model.Dessert
		if err := rows.Scan(&d.DessertID, &d.Title, &d.Description, &d.Rating, &d.CreatedAt, &d.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DessertRepository) Update(ctx context.Context, d *model.Dessert) error {
	query := `UPDATE desserts SET title=$1, description=$2, rating=$3 WHERE dessertid=$4 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, d.Title, d.Description, d.Rating, d.DessertID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

func (r *DessertRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE desserts SET deleted_at=$1 WHERE dessertid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

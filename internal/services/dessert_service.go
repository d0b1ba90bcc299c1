package services

import (
	"context"
	"strings"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
	"github.com/pynappo/Clark/internal/repository"
)

type DessertService struct {
	Repo *repository.DessertRepository
}

func NewDessertService(r *repository.DessertRepository) *DessertService {
	return &DessertService{Repo: r}
}

func (s *DessertService) Create(ctx context.Context, d *model.Dessert) (int64, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return 0, apperrors.ErrBadRequest
	}
	if d.Rating != nil && (*d.Rating < 0 || *d.Rating > 5) {
		return 0, apperrors.ErrBadRequest
	}
	return s.Repo.Create(ctx, d)
}

func (s *DessertService) List(ctx context.Context) ([]model.Dessert, error) {
	return s.Repo.List(ctx)
}

func (s *DessertService) Update(ctx context.Context, d *model.Dessert) error {
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.ErrBadRequest
	}
	return s.Repo.Update(ctx, d)
}

func (s *DessertService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

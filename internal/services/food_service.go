package services

import (
	"context"
	"strings"

	"github.com/pynappo/Clark/internal/apperrors"
	"github.com/pynappo/Clark/internal/model"
	"github.com/pynappo/Clark/internal/repository"
)

type FoodService struct {
	Repo *repository.FoodRepository
}

func NewFoodService(r *repository.FoodRepository) *FoodService {
	return &FoodService{Repo: r}
}

func (s *FoodService) Create(ctx context.Context, f *model.FoodItem) (int64, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return 0, apperrors.ErrBadRequest
	}
	if f.Price < 0 || f.Quantity < 0 {
		return 0, apperrors.ErrBadRequest
	}
	return s.Repo.Create(ctx, f)
}

func (s *FoodService) List(ctx context.Context) ([]model.FoodItem, error) {
	return s.Repo.List(ctx)
}

func (s *FoodService) Update(ctx context.Context, f *model.FoodItem) error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return apperrors.ErrBadRequest
	}
	return s.Repo.Update(ctx, f)
}

func (s *FoodService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

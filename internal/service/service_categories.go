package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type categoryService struct {
	adapter adapter.ServerAdapter
	guard   authGuard
}

// newCategoryService returns a [CategoryService] backed by the adapter.
func newCategoryService(serverAdapter adapter.ServerAdapter, guard authGuard) CategoryService {
	return &categoryService{adapter: serverAdapter, guard: guard}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.adapter.GetCategories(ctx)
	return categories, s.guard.check(ctx, "categoryService.List", err)
}

func (s *categoryService) Create(ctx context.Context, name string, color *string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrEmptyCategoryName
	}

	category, err := s.adapter.CreateCategory(ctx, models.CategoryRequest{Name: name, Color: color})
	return category, s.guard.check(ctx, "categoryService.Create", err)
}

func (s *categoryService) Update(ctx context.Context, id int64, name string, color *string) (models.Category, error) {
	if id <= 0 {
		return models.Category{}, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrEmptyCategoryName
	}

	category, err := s.adapter.UpdateCategory(ctx, id, models.CategoryRequest{Name: name, Color: color})
	return category, s.guard.check(ctx, "categoryService.Update", err)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.guard.check(ctx, "categoryService.Delete", s.adapter.DeleteCategory(ctx, id))
}

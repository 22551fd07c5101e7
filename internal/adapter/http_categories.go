package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/models"
)

func (h *httpServerAdapter) GetCategories(ctx context.Context) ([]models.Category, error) {
	env, err := h.Request(ctx, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}
	return DecodeData[[]models.Category](env)
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	env, err := h.Request(ctx, http.MethodPost, "/categories", req)
	if err != nil {
		return models.Category{}, err
	}
	return DecodeData[models.Category](env)
}

func (h *httpServerAdapter) UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (models.Category, error) {
	env, err := h.Request(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), req)
	if err != nil {
		return models.Category{}, err
	}
	return DecodeData[models.Category](env)
}

func (h *httpServerAdapter) DeleteCategory(ctx context.Context, id int64) error {
	_, err := h.Request(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
	return err
}

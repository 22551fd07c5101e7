package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-expense-keeper/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

func (h *httpServerAdapter) GetExpenses(ctx context.Context, page, perPage int) ([]models.Expense, *models.Meta, error) {
	if page <= 0 {
		page = defaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	env, err := h.Request(ctx, http.MethodGet, "/expenses", nil,
		WithQuery("page", strconv.Itoa(page)),
		WithQuery("per_page", strconv.Itoa(perPage)),
	)
	if err != nil {
		return nil, nil, err
	}

	expenses, err := DecodeData[[]models.Expense](env)
	if err != nil {
		return nil, nil, err
	}
	return expenses, env.Meta, nil
}

func (h *httpServerAdapter) GetExpense(ctx context.Context, id int64) (models.Expense, error) {
	env, err := h.Request(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil)
	if err != nil {
		return models.Expense{}, err
	}
	return DecodeData[models.Expense](env)
}

func (h *httpServerAdapter) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (models.Expense, error) {
	env, err := h.Request(ctx, http.MethodPost, "/expenses", req)
	if err != nil {
		return models.Expense{}, err
	}
	return DecodeData[models.Expense](env)
}

func (h *httpServerAdapter) UpdateExpense(ctx context.Context, id int64, upd models.ExpenseUpdate) (models.Expense, error) {
	env, err := h.Request(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), upd)
	if err != nil {
		return models.Expense{}, err
	}
	return DecodeData[models.Expense](env)
}

func (h *httpServerAdapter) DeleteExpense(ctx context.Context, id int64) error {
	_, err := h.Request(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil)
	return err
}

func (h *httpServerAdapter) GetExpenseStats(ctx context.Context) (models.ExpenseStats, error) {
	env, err := h.Request(ctx, http.MethodGet, "/expenses/stats", nil)
	if err != nil {
		return models.ExpenseStats{}, err
	}
	return DecodeData[models.ExpenseStats](env)
}

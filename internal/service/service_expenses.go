package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type expenseService struct {
	adapter adapter.ServerAdapter
	guard   authGuard
}

// newExpenseService returns an [ExpenseService] backed by the adapter.
func newExpenseService(serverAdapter adapter.ServerAdapter, guard authGuard) ExpenseService {
	return &expenseService{adapter: serverAdapter, guard: guard}
}

func (s *expenseService) List(ctx context.Context, page, perPage int) ([]models.Expense, *models.Meta, error) {
	expenses, meta, err := s.adapter.GetExpenses(ctx, page, perPage)
	return expenses, meta, s.guard.check(ctx, "expenseService.List", err)
}

func (s *expenseService) Get(ctx context.Context, id int64) (models.Expense, error) {
	if id <= 0 {
		return models.Expense{}, ErrInvalidID
	}
	expense, err := s.adapter.GetExpense(ctx, id)
	return expense, s.guard.check(ctx, "expenseService.Get", err)
}

// Create forwards req unchanged; amount, date and category are validated by
// the server.
func (s *expenseService) Create(ctx context.Context, req models.CreateExpenseRequest) (models.Expense, error) {
	expense, err := s.adapter.CreateExpense(ctx, req)
	return expense, s.guard.check(ctx, "expenseService.Create", err)
}

func (s *expenseService) Update(ctx context.Context, id int64, upd models.ExpenseUpdate) (models.Expense, error) {
	if id <= 0 {
		return models.Expense{}, ErrInvalidID
	}
	expense, err := s.adapter.UpdateExpense(ctx, id, upd)
	return expense, s.guard.check(ctx, "expenseService.Update", err)
}

func (s *expenseService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.guard.check(ctx, "expenseService.Delete", s.adapter.DeleteExpense(ctx, id))
}

func (s *expenseService) Stats(ctx context.Context) (models.ExpenseStats, error) {
	stats, err := s.adapter.GetExpenseStats(ctx)
	return stats, s.guard.check(ctx, "expenseService.Stats", err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// SessionInvalidator clears the session after the server rejected the token.
// *session.Store satisfies it.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, reason error)
}

// CategoryService manages the user's expense categories.
type CategoryService interface {
	// List returns every category of the signed-in user.
	List(ctx context.Context) ([]models.Category, error)
	// Create adds a category. color is optional.
	Create(ctx context.Context, name string, color *string) (models.Category, error)
	// Update renames or recolors category id.
	Update(ctx context.Context, id int64, name string, color *string) (models.Category, error)
	// Delete removes category id.
	Delete(ctx context.Context, id int64) error
}

// ExpenseService manages expenses and their statistics.
type ExpenseService interface {
	// List returns a page of expenses together with pagination metadata.
	List(ctx context.Context, page, perPage int) ([]models.Expense, *models.Meta, error)
	Get(ctx context.Context, id int64) (models.Expense, error)
	Create(ctx context.Context, req models.CreateExpenseRequest) (models.Expense, error)
	// Update applies a partial update. Fields left nil are not sent.
	Update(ctx context.Context, id int64, upd models.ExpenseUpdate) (models.Expense, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (models.ExpenseStats, error)
}

// ReceiptService uploads receipt images and resolves stored receipts.
type ReceiptService interface {
	// Upload sends the image at path for processing and returns the data the
	// server extracted from it.
	Upload(ctx context.Context, path string) (models.ReceiptProcessResult, error)
	// ImageURL resolves a stored receipt path to a viewable URL.
	ImageURL(ctx context.Context, receiptPath string) (string, error)
}

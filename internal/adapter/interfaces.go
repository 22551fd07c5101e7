// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport client for the expense API.
//
// [ServerAdapter] is the single point of outbound HTTP communication and the
// owner of the current bearer token. The HTTP implementation
// ([NewHTTPServerAdapter]) speaks JSON over HTTPS, attaches the token to every
// request and surfaces non-2xx responses as [*RequestError] values that
// unwrap to the status sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrValidation] for 422).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the expense API.
//
// Token state is changed only through SetToken; no request method mutates it,
// including on 401. Reacting to authentication failures is the caller's job.
type ServerAdapter interface {
	// SetToken replaces the in-memory bearer token and persists it. An empty
	// token means anonymous and clears the persisted slot. Persistence
	// failures are logged and swallowed.
	SetToken(ctx context.Context, token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Request performs a JSON request against endpoint (relative to the base
	// URL) and returns the decoded response envelope.
	Request(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (*models.Envelope, error)

	// UploadReceipt sends a receipt image as multipart form data.
	UploadReceipt(ctx context.Context, fileName string, file io.Reader) (*models.Envelope, error)

	// Register creates an account. The raw envelope is returned for
	// normalization by the caller.
	Register(ctx context.Context, req models.RegisterRequest) (*models.Envelope, error)
	// Login exchanges credentials for a token. The raw envelope is returned
	// for normalization by the caller.
	Login(ctx context.Context, req models.LoginRequest) (*models.Envelope, error)
	// Logout revokes the current token on the server.
	Logout(ctx context.Context) (*models.Envelope, error)
	// GetUser fetches the user the current token belongs to.
	GetUser(ctx context.Context) (*models.Envelope, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// GetExpenses returns one page of expenses. Non-positive page and perPage
	// fall back to 1 and 20.
	GetExpenses(ctx context.Context, page, perPage int) ([]models.Expense, *models.Meta, error)
	GetExpense(ctx context.Context, id int64) (models.Expense, error)
	CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (models.Expense, error)
	// UpdateExpense sends a partial update. Nil fields are omitted from the
	// body; validation is left to the server.
	UpdateExpense(ctx context.Context, id int64, upd models.ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetExpenseStats(ctx context.Context) (models.ExpenseStats, error)

	// GetReceiptImageURL resolves a stored receipt path to a viewable URL.
	GetReceiptImageURL(ctx context.Context, path string) (string, error)
}

package models

// Expense is a single spending record.
type Expense struct {
	ID               int64     `json:"id"`
	Amount           float64   `json:"amount"`
	Description      string    `json:"description"`
	CategoryID       int64     `json:"category_id"`
	Category         *Category `json:"category,omitempty"`
	ReceiptImagePath *string   `json:"receipt_image_path,omitempty"`
	ExpenseDate      string    `json:"expense_date"`
	UserID           int64     `json:"user_id"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// CreateExpenseRequest is the body of POST /expenses.
type CreateExpenseRequest struct {
	Amount           float64 `json:"amount"`
	Description      string  `json:"description"`
	CategoryID       int64   `json:"category_id"`
	ExpenseDate      string  `json:"expense_date"`
	ReceiptImagePath *string `json:"receipt_image_path,omitempty"`
}

// ExpenseUpdate is a partial expense record for PUT /expenses/:id.
// Only non-nil fields are sent; merging and validation happen on the server.
type ExpenseUpdate struct {
	Amount           *float64 `json:"amount,omitempty"`
	Description      *string  `json:"description,omitempty"`
	CategoryID       *int64   `json:"category_id,omitempty"`
	ExpenseDate      *string  `json:"expense_date,omitempty"`
	ReceiptImagePath *string  `json:"receipt_image_path,omitempty"`
}

// ExpenseStats aggregates spending over fixed periods and per category.
type ExpenseStats struct {
	Totals            ExpenseTotals                `json:"totals"`
	CategoryBreakdown map[string]CategoryBreakdown `json:"category_breakdown"`
}

// ExpenseTotals holds period totals. The server formats them as strings.
type ExpenseTotals struct {
	ThisWeek  string `json:"this_week"`
	ThisMonth string `json:"this_month"`
	AllTime   string `json:"all_time"`
}

// CategoryBreakdown is the spending summary of one category.
type CategoryBreakdown struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

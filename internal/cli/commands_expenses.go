package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
)

const dateLayout = "2006-01-02"

func (c *CLI) expenses(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "get", "create", "update", "delete")
	if err != nil {
		return err
	}
	if _, err = c.requireSession(ctx); err != nil {
		return err
	}

	switch sub {
	case "list":
		return c.listExpenses(ctx, rest)
	case "get":
		return c.getExpense(ctx, rest)
	case "create":
		return c.createExpense(ctx, rest)
	case "update":
		return c.updateExpense(ctx, rest)
	default:
		return c.deleteExpense(ctx, rest)
	}
}

func (c *CLI) listExpenses(ctx context.Context, args []string) error {
	fs := newFlagSet("expenses list")
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 20, "items per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, meta, err := c.deps.Expenses.List(ctx, *page, *perPage)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{
			formatID(e.ID),
			e.ExpenseDate,
			formatAmount(e.Amount),
			categoryName(e),
			fitText(e.Description, 40),
		})
	}
	c.println(renderTable([]string{"ID", "Date", "Amount", "Category", "Description"}, rows))
	if meta != nil {
		c.println(helpStyle.Render(fmt.Sprintf("page %d of %d, %d total", meta.CurrentPage, meta.LastPage, meta.Total)))
	}
	return nil
}

func (c *CLI) getExpense(ctx context.Context, args []string) error {
	fs := newFlagSet("expenses get")
	id := fs.Int64("id", 0, "expense id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := c.deps.Expenses.Get(ctx, *id)
	if err != nil {
		return err
	}
	c.printExpense("Expense", e)
	return nil
}

func (c *CLI) createExpense(ctx context.Context, args []string) error {
	fs := newFlagSet("expenses create")
	amount := fs.Float64("amount", 0, "amount spent")
	description := fs.String("description", "", "what the money was spent on")
	categoryID := fs.Int64("category", 0, "category id (required)")
	date := fs.String("date", time.Now().Format(dateLayout), "expense date, YYYY-MM-DD")
	receipt := fs.String("receipt", "", "receipt image path returned by receipts upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.CreateExpenseRequest{
		Amount:           *amount,
		Description:      *description,
		CategoryID:       *categoryID,
		ExpenseDate:      *date,
		ReceiptImagePath: optional(*receipt),
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return err
	}

	created, err := c.deps.Expenses.Create(ctx, req)
	if err != nil {
		return err
	}
	c.printExpense("Expense created", created)
	return nil
}

// updateExpense sends only the flags given on the command line.
func (c *CLI) updateExpense(ctx context.Context, args []string) error {
	fs := newFlagSet("expenses update")
	id := fs.Int64("id", 0, "expense id")
	amount := fs.Float64("amount", 0, "amount spent")
	description := fs.String("description", "", "description")
	categoryID := fs.Int64("category", 0, "category id")
	date := fs.String("date", "", "expense date, YYYY-MM-DD")
	receipt := fs.String("receipt", "", "receipt image path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var upd models.ExpenseUpdate
	set := setFlags(fs)
	if set["amount"] {
		upd.Amount = amount
	}
	if set["description"] {
		upd.Description = description
	}
	if set["category"] {
		upd.CategoryID = categoryID
	}
	if set["date"] {
		upd.ExpenseDate = date
	}
	if set["receipt"] {
		upd.ReceiptImagePath = receipt
	}
	if err := c.validator.Validate(ctx, upd); err != nil {
		return err
	}

	updated, err := c.deps.Expenses.Update(ctx, *id, upd)
	if err != nil {
		return err
	}
	c.printExpense("Expense updated", updated)
	return nil
}

func (c *CLI) deleteExpense(ctx context.Context, args []string) error {
	fs := newFlagSet("expenses delete")
	id := fs.Int64("id", 0, "expense id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.deps.Expenses.Delete(ctx, *id); err != nil {
		return err
	}
	c.println(okStyle.Render(fmt.Sprintf("expense %d deleted", *id)))
	return nil
}

func (c *CLI) stats(ctx context.Context, _ []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	st, err := c.deps.Expenses.Stats(ctx)
	if err != nil {
		return err
	}

	c.println(renderPage("Totals", joinLines([]string{
		"This week:  " + st.Totals.ThisWeek,
		"This month: " + st.Totals.ThisMonth,
		"All time:   " + st.Totals.AllTime,
	})))

	names := make([]string, 0, len(st.CategoryBreakdown))
	for name := range st.CategoryBreakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		b := st.CategoryBreakdown[name]
		rows = append(rows, []string{name, formatAmount(b.Total), strconv.Itoa(b.Count)})
	}
	c.println(renderTable([]string{"Category", "Total", "Count"}, rows))
	return nil
}

func (c *CLI) printExpense(title string, e models.Expense) {
	c.println(renderPage(title, joinLines([]string{
		fmt.Sprintf("ID:          %d", e.ID),
		"Date:        " + e.ExpenseDate,
		"Amount:      " + formatAmount(e.Amount),
		"Category:    " + categoryName(e),
		"Description: " + e.Description,
		"Receipt:     " + valueOrDash(e.ReceiptImagePath),
	})))
}

func categoryName(e models.Expense) string {
	if e.Category != nil && e.Category.Name != "" {
		return e.Category.Name
	}
	if e.CategoryID > 0 {
		return "#" + strconv.FormatInt(e.CategoryID, 10)
	}
	return "-"
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
)

func (c *CLI) receipts(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "upload", "url")
	if err != nil {
		return err
	}
	if _, err = c.requireSession(ctx); err != nil {
		return err
	}

	if sub == "upload" {
		return c.uploadReceipt(ctx, rest)
	}
	return c.receiptURL(ctx, rest)
}

func (c *CLI) uploadReceipt(ctx context.Context, args []string) error {
	fs := newFlagSet("receipts upload")
	file := fs.String("file", "", "path of the receipt image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := c.deps.Receipts.Upload(ctx, *file)
	if err != nil {
		return err
	}

	data := res.ExtractedData
	c.println(renderPage("Receipt processed", joinLines([]string{
		"Stored as: " + res.ReceiptImagePath,
		"Merchant:  " + data.MerchantName,
		"Date:      " + data.Date,
		"Total:     " + formatAmount(data.TotalAmount),
	})))

	rows := make([][]string, 0, len(data.Items))
	for _, item := range data.Items {
		rows = append(rows, []string{
			fitText(item.Name, 32),
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			formatAmount(item.Price),
			item.SuggestedCategory,
		})
	}
	if len(rows) > 0 {
		c.println(renderTable([]string{"Item", "Qty", "Price", "Suggested category"}, rows))
	}
	c.println(helpStyle.Render(fmt.Sprintf("attach with: expenses create -receipt %s", res.ReceiptImagePath)))
	return nil
}

func (c *CLI) receiptURL(ctx context.Context, args []string) error {
	fs := newFlagSet("receipts url")
	path := fs.String("path", "", "stored receipt path")
	copyURL := fs.Bool("copy", false, "copy the URL to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	u, err := c.deps.Receipts.ImageURL(ctx, *path)
	if err != nil {
		return err
	}
	c.println(u)

	if *copyURL {
		if err := c.deps.Clipboard(u); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.println(helpStyle.Render(app.MsgCopiedToClipboard))
	}
	return nil
}

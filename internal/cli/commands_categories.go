package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func (c *CLI) categories(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "create", "update", "delete")
	if err != nil {
		return err
	}
	if _, err = c.requireSession(ctx); err != nil {
		return err
	}

	switch sub {
	case "list":
		return c.listCategories(ctx)
	case "create":
		return c.createCategory(ctx, rest)
	case "update":
		return c.updateCategory(ctx, rest)
	default:
		return c.deleteCategory(ctx, rest)
	}
}

func (c *CLI) listCategories(ctx context.Context) error {
	items, err := c.deps.Categories.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{formatID(item.ID), fitText(item.Name, 32), valueOrDash(item.Color)})
	}
	c.println(renderTable([]string{"ID", "Name", "Color"}, rows))
	return nil
}

func (c *CLI) createCategory(ctx context.Context, args []string) error {
	fs := newFlagSet("categories create")
	name := fs.String("name", "", "category name")
	color := fs.String("color", "", "optional color, e.g. #ff8800")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.validateColor(ctx, *color); err != nil {
		return err
	}

	created, err := c.deps.Categories.Create(ctx, *name, optional(*color))
	if err != nil {
		return err
	}
	c.printCategory("Category created", created)
	return nil
}

func (c *CLI) updateCategory(ctx context.Context, args []string) error {
	fs := newFlagSet("categories update")
	id := fs.Int64("id", 0, "category id")
	name := fs.String("name", "", "new name")
	color := fs.String("color", "", "new color")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.validateColor(ctx, *color); err != nil {
		return err
	}

	updated, err := c.deps.Categories.Update(ctx, *id, *name, optional(*color))
	if err != nil {
		return err
	}
	c.printCategory("Category updated", updated)
	return nil
}

func (c *CLI) deleteCategory(ctx context.Context, args []string) error {
	fs := newFlagSet("categories delete")
	id := fs.Int64("id", 0, "category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.deps.Categories.Delete(ctx, *id); err != nil {
		return err
	}
	c.println(okStyle.Render(fmt.Sprintf("category %d deleted", *id)))
	return nil
}

func (c *CLI) printCategory(title string, item models.Category) {
	c.println(renderPage(title, joinLines([]string{
		fmt.Sprintf("ID:    %d", item.ID),
		fmt.Sprintf("Name:  %s", item.Name),
		fmt.Sprintf("Color: %s", valueOrDash(item.Color)),
	})))
}

// validateColor checks only the color; the name is validated by the service.
func (c *CLI) validateColor(ctx context.Context, color string) error {
	return c.validator.Validate(ctx, models.CategoryRequest{Color: optional(color)}, validators.FieldColor)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

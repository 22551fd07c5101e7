package cli

import (
	"context"
	"strings"
)

func (c *CLI) version(context.Context, []string) error {
	c.println(renderPage("go-expense-keeper", c.deps.BuildInfo.String()))
	return nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

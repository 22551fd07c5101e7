package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/session"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// Watcher is a background job with an explicit lifecycle.
// *workers.SessionWatcher satisfies it.
type Watcher interface {
	Start(ctx context.Context)
	Stop()
}

// Deps carries everything the commands operate on.
type Deps struct {
	Session    *session.Store
	Categories service.CategoryService
	Expenses   service.ExpenseService
	Receipts   service.ReceiptService

	// Token returns the bearer token currently held by the transport.
	Token func() string
	// Watcher is started by the watch command.
	Watcher Watcher

	BuildInfo models.AppBuildInfo
	Out       io.Writer

	// Clipboard copies text for "receipts url -copy". Defaults to the
	// system clipboard.
	Clipboard func(string) error
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// CLI dispatches command lines to their handlers.
type CLI struct {
	deps      Deps
	validator validators.Validator
	commands  map[string]command
}

// New builds a CLI over deps.
func New(deps Deps) *CLI {
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}

	c := &CLI{deps: deps, validator: validators.NewExpenseValidator()}
	c.commands = map[string]command{
		"login":      {"login -email E -password P", c.login},
		"register":   {"register -name N -email E -password P [-password-confirmation P]", c.register},
		"logout":     {"logout", c.logout},
		"whoami":     {"whoami", c.whoami},
		"watch":      {"watch", c.watch},
		"categories": {"categories list|create|update|delete [flags]", c.categories},
		"expenses":   {"expenses list|get|create|update|delete [flags]", c.expenses},
		"stats":      {"stats", c.stats},
		"receipts":   {"receipts upload -file F | url -path P [-copy]", c.receipts},
		"version":    {"version", c.version},
	}
	return c
}

// Run executes the command named by args[0].
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		c.printUsage()
		return nil
	}

	cmd, ok := c.commands[args[0]]
	if !ok {
		c.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if err := cmd.run(ctx, args[1:]); err != nil {
		return err
	}
	return nil
}

func (c *CLI) printUsage() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, c.commands[name].usage)
	}
	c.println(renderPage("Usage: expense-keeper [flags] <command>", strings.Join(lines, "\n")))
}

// requireSession initializes the session and fails when nobody is signed in.
func (c *CLI) requireSession(ctx context.Context) (models.User, error) {
	c.deps.Session.Initialize(ctx)

	st := c.deps.Session.State()
	if !st.IsAuthenticated() {
		return models.User{}, ErrNotLoggedIn
	}
	return *st.User, nil
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.deps.Out, s)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func subcommand(args []string, known ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: expected one of %s", ErrMissingArgument, strings.Join(known, ", "))
	}
	for _, k := range known {
		if args[0] == k {
			return k, args[1:], nil
		}
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
}

// setFlags reports which flags were given explicitly.
func setFlags(fs *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

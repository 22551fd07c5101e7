package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/session"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%w: -email and -password are required", ErrMissingArgument)
	}

	env, err := c.deps.Session.Login(ctx, *email, *password)
	return c.finishAuth(env, err)
}

func (c *CLI) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", "", "account password")
	confirmation := fs.String("password-confirmation", "", "repeated password, defaults to -password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("%w: -name, -email and -password are required", ErrMissingArgument)
	}
	if *confirmation == "" {
		*confirmation = *password
	}

	env, err := c.deps.Session.Register(ctx, *name, *email, *password, *confirmation)
	return c.finishAuth(env, err)
}

func (c *CLI) finishAuth(env *models.Envelope, err error) error {
	if err != nil {
		return err
	}

	st := c.deps.Session.State()
	if !st.IsAuthenticated() {
		msg := app.MsgUnrecognizedAuthResponse
		if env != nil && env.Message != "" {
			msg = env.Message
		}
		return fmt.Errorf("%w: %s", ErrAuthRejected, msg)
	}

	c.println(okStyle.Render(fmt.Sprintf("signed in as %s <%s>", st.User.Name, st.User.Email)))
	return nil
}

func (c *CLI) logout(ctx context.Context, _ []string) error {
	c.deps.Session.Logout(ctx)
	c.println(app.MsgLoggedOut)
	return nil
}

func (c *CLI) whoami(ctx context.Context, _ []string) error {
	user, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("ID:     %d", user.ID),
		fmt.Sprintf("Name:   %s", user.Name),
		fmt.Sprintf("E-mail: %s", user.Email),
		"Token:  " + describeToken(c.deps.Token(), time.Now()),
	}
	c.println(renderPage("Current user", joinLines(lines)))
	return nil
}

func describeToken(token string, now time.Time) string {
	info, err := utils.InspectToken(token)
	if errors.Is(err, utils.ErrOpaqueToken) {
		return "opaque, expiry unknown"
	}
	if err != nil {
		return "unreadable"
	}
	if info.ExpiresAt.IsZero() {
		return "JWT without expiry"
	}
	if info.Expired(now) {
		return "expired at " + info.ExpiresAt.Format(time.RFC3339)
	}
	return "valid until " + info.ExpiresAt.Format(time.RFC3339)
}

// watch keeps revalidating the session until ctx ends or the session is
// lost.
func (c *CLI) watch(ctx context.Context, _ []string) error {
	user, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	lost := make(chan struct{})
	var once sync.Once
	unsubscribe := c.deps.Session.Subscribe(func(st session.State) {
		if !st.IsAuthenticated() {
			once.Do(func() { close(lost) })
		}
	})
	defer unsubscribe()

	c.deps.Watcher.Start(ctx)
	defer c.deps.Watcher.Stop()

	c.println(helpStyle.Render(fmt.Sprintf("watching session of %s, ctrl+c to stop", user.Email)))

	select {
	case <-ctx.Done():
		return nil
	case <-lost:
		return ErrNotLoggedIn
	}
}

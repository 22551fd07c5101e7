package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/app"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNotLoggedIn     = errors.New(app.MsgNotLoggedIn)
	ErrAuthRejected    = errors.New("authentication failed")
)

// Humanize renders err for terminal output. Network failures collapse into
// one message and validation errors list their fields.
func Humanize(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrTransport) {
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "connection refused") ||
			strings.Contains(s, "no such host") ||
			strings.Contains(s, "network is unreachable") ||
			strings.Contains(s, "i/o timeout") ||
			strings.Contains(s, "deadline exceeded") {
			return "network unavailable or server unreachable"
		}
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) && len(reqErr.Errors) > 0 {
		fields := make([]string, 0, len(reqErr.Errors))
		for field := range reqErr.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		var b strings.Builder
		b.WriteString(reqErr.Message)
		for _, field := range fields {
			fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(reqErr.Errors[field], "; "))
		}
		return b.String()
	}

	return err.Error()
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// authGuard post-processes adapter errors for every service. A 401 clears
// the session so that token and user never disagree.
type authGuard struct {
	session SessionInvalidator
	logger  *logger.Logger
}

func (g authGuard) check(ctx context.Context, fn string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		g.session.Invalidate(ctx, err)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		g.logger.Warn().Str("func", fn).Int("status", reqErr.StatusCode).Msg(reqErr.Message)
		return err
	}

	g.logger.Err(err).Str("func", fn).Msg("request failed")
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/cli"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/session"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/workers"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// App owns every long-lived component of the client.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	watcher  *workers.SessionWatcher
	cli      *cli.CLI

	logger *logger.Logger
}

// NewApp opens local storage and builds the client on top of it. When the
// SQLite database cannot be used the token lives in memory for this run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewApp").Msg("local storage unavailable, token will not survive restart")
		storages = store.NewMemoryClientStorages(cfg.Storage.TokenKey)
	}

	return NewAppWithStorages(cfg, storages, buildInfo, out, logger)
}

// NewAppWithStorages builds the client over already opened storages. The
// App takes ownership of storages and closes them in Close.
func NewAppWithStorages(cfg *config.ClientConfig, storages *store.ClientStorages, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Token, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessionStore := session.New(serverAdapter, logger)
	services := service.NewClientServices(serverAdapter, sessionStore, logger)
	watcher := workers.NewSessionWatcher(sessionStore, cfg.Workers.SessionCheckInterval, logger)

	return &App{
		storages: storages,
		services: services,
		watcher:  watcher,
		cli: cli.New(cli.Deps{
			Session:    services.Session,
			Categories: services.Categories,
			Expenses:   services.Expenses,
			Receipts:   services.Receipts,
			Token:      serverAdapter.Token,
			Watcher:    watcher,
			BuildInfo:  buildInfo,
			Out:        out,
		}),
		logger: logger,
	}, nil
}

// Services exposes the wired services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run executes one command line.
func (a *App) Run(ctx context.Context, args []string) error {
	a.logger.Debug().Strs("args", redact(args)).Msg("running command")
	return a.cli.Run(ctx, args)
}

// Close stops the watcher and closes local storage.
func (a *App) Close() error {
	a.watcher.Stop()
	return a.storages.Close()
}

// redact hides the values of password flags in both the "-flag value" and
// "-flag=value" forms.
func redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out); i++ {
		name, _, inline := strings.Cut(out[i], "=")
		if !isPasswordFlag(name) {
			continue
		}
		if inline {
			out[i] = name + "=***"
			continue
		}
		if i+1 < len(out) {
			out[i+1] = "***"
			i++
		}
	}
	return out
}

func isPasswordFlag(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "password", "password-confirmation":
		return strings.HasPrefix(arg, "-")
	}
	return false
}

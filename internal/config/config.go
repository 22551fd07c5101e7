// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied before any other source is read.
const (
	DefaultHTTPAddress          = "http://localhost:8000/api"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultTokenKey             = "auth_token"
	DefaultSessionCheckInterval = 5 * time.Minute
	defaultDBFileName           = "client.db"
	appDirName                  = "go-expense-keeper"
)

// StructuredConfig is the top-level configuration container for the
// go-expense-keeper client. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token slot key and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database that keeps the
	// persisted token slot.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the expense API address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenKey is the key of the persisted slot that keeps the bearer token.
	// Env: APP_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`

	// LogFile is the file that receives structured client logs. Empty means
	// a "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path. ":memory:"
	// keeps the token slot for the lifetime of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound transport to the expense API.
type Adapter struct {
	// HTTPAddress is the base URL of the expense API including its base
	// path (e.g. "https://expenses.example.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCheckInterval is how often an authenticated session is
	// re-validated against GET /user.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It also returns the positional arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenKey: DefaultTokenKey},
		Storage: Storage{DB: DB{DSN: defaultDSN()}},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{SessionCheckInterval: DefaultSessionCheckInterval},
	}
}

func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultDBFileName
	}
	return filepath.Join(dir, appDirName, defaultDBFileName)
}

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the global client flags from args. Parsing stops at the
// first positional argument, which is returned together with everything
// after it.
//
// Flags:
//
//	-a expense API base URL (e.g. http://localhost:8000/api)
//	-request-timeout outbound request timeout (e.g. "15s", "1m")
//	-d local database DSN
//	-token-key persisted token slot key
//	-log-file log file path
//	-session-check-interval session re-validation interval (e.g. "5m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var apiAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var tokenKey string
	var logFile string
	var sessionCheckInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "Expense API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&tokenKey, "token-key", "", "Persisted token slot key")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session re-validation interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenKey: tokenKey,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SessionCheckInterval: sessionCheckInterval},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

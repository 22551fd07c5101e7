package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/apitest"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func testConfig(address string) *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{TokenKey: config.DefaultTokenKey},
		Adapter: config.ClientAdapter{HTTPAddress: address, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{TokenKey: config.DefaultTokenKey},
		Workers: config.ClientWorkers{SessionCheckInterval: time.Minute},
	}
}

func TestNewAppWithStorages_TokenSurvivesRestart(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")

	storages := store.NewMemoryClientStorages(config.DefaultTokenKey)
	cfg := testConfig(srv.BaseURL())
	out := &bytes.Buffer{}
	ctx := context.Background()

	first, err := NewAppWithStorages(cfg, storages, models.NewAppBuildInfo("", "", ""), out, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Run(ctx, []string{"login", "-email", "ann@example.com", "-password", "secret123"}))
	require.NoError(t, first.Close())

	// A second app over the same slots restores the session.
	second, err := NewAppWithStorages(cfg, storages, models.NewAppBuildInfo("", "", ""), out, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, second.Run(ctx, []string{"whoami"}))
	assert.Contains(t, out.String(), "ann@example.com")

	st := second.Services().Session.State()
	assert.True(t, st.IsInitialized)
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, 1, srv.UserCalls())
	assert.NotEmpty(t, srv.LastTraceID())

	require.NoError(t, second.Run(ctx, []string{"logout"}))
	token, err := storages.Token.LoadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, second.Close())
}

func TestNewAppWithStorages_InvalidAddress(t *testing.T) {
	_, err := NewAppWithStorages(testConfig(""), store.NewMemoryClientStorages("k"), models.NewAppBuildInfo("", "", ""), &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, adapter.ErrInvalidBaseURL)
}

func TestNewApp_FallsBackToMemoryStorage(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	cfg := testConfig("http://localhost:1/api")
	cfg.Storage.DB.DSN = filepath.Join(blocker, "nested", "client.db")

	a, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), &bytes.Buffer{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, a.storages.Close())
	assert.NotNil(t, a.storages.Token)
}

func TestRedact(t *testing.T) {
	got := redact([]string{"login", "-email", "a@b.c", "-password", "secret", "-password-confirmation", "secret"})
	assert.Equal(t, []string{"login", "-email", "a@b.c", "-password", "***", "-password-confirmation", "***"}, got)

	got = redact([]string{"login", "-email", "a@b.c", "-password=secret", "--password-confirmation=secret"})
	assert.Equal(t, []string{"login", "-email", "a@b.c", "-password=***", "--password-confirmation=***"}, got)
	assert.NotContains(t, got, "-password=secret")

	got = redact([]string{"register", "--password", "secret", "-name", "password"})
	assert.Equal(t, []string{"register", "--password", "***", "-name", "password"}, got)
}

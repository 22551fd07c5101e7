package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

func TestNewMemoryClientStorages(t *testing.T) {
	s := NewMemoryClientStorages("auth_token")
	require.NotNil(t, s.Token)
	require.NotNil(t, s.Slots)

	ctx := context.Background()
	require.NoError(t, s.Token.SaveToken(ctx, "t"))

	v, err := s.Slots.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "t", v)
	assert.NoError(t, s.Close())
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

func TestNewClientStorages_UnwritableLocation(t *testing.T) {
	// a path below a regular file can never be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, createLocalDBFileIfNotExists(blocker))

	cfg := config.ClientStorage{
		DB:       config.ClientDB{DSN: filepath.Join(blocker, "nested", "client.db")},
		TokenKey: "auth_token",
	}
	_, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestCreateLocalDBFileIfNotExists_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "client.db")
	require.NoError(t, createLocalDBFileIfNotExists("file:"+path+"?cache=shared"))
	assert.FileExists(t, path)
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file:test?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("/tmp/client.db"))
}

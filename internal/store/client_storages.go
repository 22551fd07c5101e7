package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed to the transport layer.
type ClientStorages struct {
	// Slots is the key-value repository behind the token slot.
	Slots KeyValueStorage
	// Token is the persisted bearer token slot.
	Token TokenStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Binds the token slot to cfg.TokenKey.
//
// Returns an error wrapping [ErrStorageUnavailable] if the database cannot be
// opened or migrated. Use [NewMemoryClientStorages] as a fallback.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	slots := NewSlotRepository(db, logger)
	return &ClientStorages{
		Slots: slots,
		Token: NewTokenSlot(slots, cfg.TokenKey),
		db:    db,
	}, nil
}

// NewMemoryClientStorages builds [ClientStorages] that live only as long as
// the process.
func NewMemoryClientStorages(tokenKey string) *ClientStorages {
	slots := NewMemoryStorage()
	return &ClientStorages{
		Slots: slots,
		Token: NewTokenSlot(slots, tokenKey),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

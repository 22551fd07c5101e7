package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// slotRepository is the SQLite-backed implementation of [KeyValueStorage].
type slotRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSlotRepository constructs a [KeyValueStorage] over the kv_slots table.
func NewSlotRepository(db *DB, logger *logger.Logger) KeyValueStorage {
	return &slotRepository{db: db, logger: logger, now: time.Now}
}

// Get implements [KeyValueStorage].
func (r *slotRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectSlot(key)
	if err != nil {
		return "", err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrSlotNotFound
	case err != nil:
		r.logger.Err(err).
			Str("func", "slotRepository.Get").
			Str("key", key).
			Msg("failed to read slot")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

// Set implements [KeyValueStorage].
func (r *slotRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSlot(key, value, r.now())
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "slotRepository.Set").
			Str("key", key).
			Msg("failed to upsert slot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// Delete implements [KeyValueStorage].
func (r *slotRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSlot(key)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "slotRepository.Delete").
			Str("key", key).
			Msg("failed to delete slot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

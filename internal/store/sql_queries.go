package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const slotsTable = "kv_slots"

func buildSelectSlot(key string) (string, []any, error) {
	query, args, err := sq.Select("value").
		From(slotsTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSlot(key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSlot(key string) (string, []any, error) {
	query, args, err := sq.Delete(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

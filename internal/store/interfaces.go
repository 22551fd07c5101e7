// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps client-side persisted state: a small key-value table in
// a local SQLite database and the bearer token slot built on top of it.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a low-level string key-value repository.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrSlotNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// TokenStorage is the persisted bearer token slot. An empty token means the
// client is anonymous.
type TokenStorage interface {
	// LoadToken returns the persisted token, or "" when none is stored.
	LoadToken(ctx context.Context) (string, error)
	// SaveToken persists token. An empty token clears the slot.
	SaveToken(ctx context.Context, token string) error
}

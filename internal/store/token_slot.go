// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// tokenSlot binds a [KeyValueStorage] to the key that keeps the bearer token.
type tokenSlot struct {
	kv  KeyValueStorage
	key string
}

// NewTokenSlot returns a [TokenStorage] that keeps the token under key.
func NewTokenSlot(kv KeyValueStorage, key string) TokenStorage {
	return &tokenSlot{kv: kv, key: key}
}

// LoadToken implements [TokenStorage]. A missing slot is reported as "".
func (s *tokenSlot) LoadToken(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrSlotNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token slot %q: %w", s.key, err)
	}
	return strings.TrimSpace(token), nil
}

// SaveToken implements [TokenStorage].
func (s *tokenSlot) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	var err error
	if token == "" {
		err = s.kv.Delete(ctx, s.key)
	} else {
		err = s.kv.Set(ctx, s.key, token)
	}
	if err != nil {
		return fmt.Errorf("save token slot %q: %w", s.key, err)
	}
	return nil
}

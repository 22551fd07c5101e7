package service

import "errors"

var (
	// ErrSessionExpired wraps any 401 seen by a service. The session has
	// already been cleared when it is returned.
	ErrSessionExpired = errors.New("session expired, please log in again")

	ErrInvalidID         = errors.New("id must be positive")
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrEmptyReceiptPath  = errors.New("receipt path is required")
	ErrReadReceiptFile   = errors.New("cannot read receipt file")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidColor     = errors.New("color must look like #rrggbb")
	ErrInvalidAmount    = errors.New("amount must be greater than 0")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrDescriptionLong  = errors.New("description is too long")
	ErrInvalidCategory  = errors.New("category id must be a positive number")
	ErrEmptyReceipt     = errors.New("receipt path must not be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// FieldError ties a validation failure to the request field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

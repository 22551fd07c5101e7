// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the JSON wrapper the expense API puts around every payload.
//
// Data, Message, Errors and Meta mirror the documented fields. Raw keeps the
// complete body so that callers can recognise shapes which do not follow the
// wrapper (for example flat token/user login responses).
type Envelope struct {
	// Data is the payload. It stays undecoded until the caller knows its type.
	Data json.RawMessage `json:"data,omitempty"`

	// Message is a human-readable status or error message.
	Message string `json:"message,omitempty"`

	// Errors maps request field names to validation messages.
	Errors map[string][]string `json:"errors,omitempty"`

	// Meta carries pagination details of list responses.
	Meta *Meta `json:"meta,omitempty"`

	// Raw is the undecoded response body.
	Raw json.RawMessage `json:"-"`
}

// HasData reports whether the envelope carries a non-null data field.
func (e *Envelope) HasData() bool {
	return e != nil && len(e.Data) > 0 && string(e.Data) != "null"
}

// Meta describes a page of a paginated list.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

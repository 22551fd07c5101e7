// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// Register implements [ServerAdapter] via POST /register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (*models.Envelope, error) {
	return h.Request(ctx, http.MethodPost, "/register", req)
}

// Login implements [ServerAdapter] via POST /login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (*models.Envelope, error) {
	return h.Request(ctx, http.MethodPost, "/login", req)
}

// Logout implements [ServerAdapter] via POST /logout.
func (h *httpServerAdapter) Logout(ctx context.Context) (*models.Envelope, error) {
	return h.Request(ctx, http.MethodPost, "/logout", nil)
}

// GetUser implements [ServerAdapter] via GET /user.
func (h *httpServerAdapter) GetUser(ctx context.Context) (*models.Envelope, error) {
	return h.Request(ctx, http.MethodGet, "/user", nil)
}

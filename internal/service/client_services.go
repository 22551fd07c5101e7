// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/session"
)

// ClientServices groups the session with the domain services built on the
// same adapter.
type ClientServices struct {
	Session    *session.Store
	Categories CategoryService
	Expenses   ExpenseService
	Receipts   ReceiptService
}

// NewClientServices wires every domain service to serverAdapter and routes
// their authentication failures to sessionStore.
func NewClientServices(serverAdapter adapter.ServerAdapter, sessionStore *session.Store, logger *logger.Logger) *ClientServices {
	guard := authGuard{session: sessionStore, logger: logger}

	return &ClientServices{
		Session:    sessionStore,
		Categories: newCategoryService(serverAdapter, guard),
		Expenses:   newExpenseService(serverAdapter, guard),
		Receipts:   newReceiptService(serverAdapter, guard),
	}
}

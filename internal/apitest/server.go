// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest provides an in-process fake of the expense API for tests.
//
// The fake keeps users, tokens, categories and expenses in memory and speaks
// the same JSON envelopes as the real backend. The shape of auth responses is
// switchable so that every normalization path can be exercised end to end.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// AuthShape selects how login and register responses carry the credentials.
type AuthShape int

const (
	// ShapeDataWrapped answers {"data": {"token", "user"}}.
	ShapeDataWrapped AuthShape = iota
	// ShapeFlatToken answers {"token", "user"}.
	ShapeFlatToken
	// ShapeAccessToken answers {"access_token", "token_type", "user"}.
	ShapeAccessToken
	// ShapeMessageOnly answers {"message"} without credentials.
	ShapeMessageOnly
)

const traceIDHeader = "X-Trace-ID"

// Server is a running fake backend.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[int64]*account
	tokens     map[string]int64
	categories map[int64]*models.Category
	expenses   map[int64]*models.Expense
	receipts   map[string]string
	nextID     int64
	tokenSeq   int64
	authShape  AuthShape
	failLogout bool

	validator validators.Validator
	logger    *logger.Logger

	userCalls atomic.Int32
	lastTrace atomic.Value
}

type account struct {
	user     models.User
	password string
}

// Option customizes a Server before it starts.
type Option func(*Server)

// WithLogger makes the server log every request to l.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer starts a fake backend that is closed when t finishes.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		users:      make(map[int64]*account),
		tokens:     make(map[string]int64),
		categories: make(map[int64]*models.Category),
		expenses:   make(map[int64]*models.Expense),
		receipts:   make(map[string]string),
		validator:  validators.NewExpenseValidator(),
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", s.register)
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Post("/logout", s.logout)
			r.Get("/user", s.currentUser)

			r.Get("/categories", s.listCategories)
			r.Post("/categories", s.createCategory)
			r.Put("/categories/{id}", s.updateCategory)
			r.Delete("/categories/{id}", s.deleteCategory)

			r.Get("/expenses", s.listExpenses)
			r.Get("/expenses/stats", s.expenseStats)
			r.Post("/expenses", s.createExpense)
			r.Get("/expenses/{id}", s.getExpense)
			r.Put("/expenses/{id}", s.updateExpense)
			r.Delete("/expenses/{id}", s.deleteExpense)

			r.Post("/receipts/upload", s.uploadReceipt)
			r.Get("/receipts/{path}/url", s.receiptURL)
		})
	})

	return router
}

// BaseURL returns the API root the client should be configured with.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// SetAuthShape switches the shape of subsequent auth responses.
func (s *Server) SetAuthShape(shape AuthShape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authShape = shape
}

// FailLogout makes POST /logout answer 500.
func (s *Server) FailLogout(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLogout = fail
}

// AddUser registers an account and returns it.
func (s *Server) AddUser(name, email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(name, email, password).user
}

// IssueToken creates a valid token for the user with email.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.users {
		if a.user.Email == email {
			return s.issueTokenLocked(id)
		}
	}
	return ""
}

// RevokeAll invalidates every issued token.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]int64)
}

// UserCalls reports how many times GET /user was served.
func (s *Server) UserCalls() int {
	return int(s.userCalls.Load())
}

// LastTraceID returns the X-Trace-ID of the most recent request.
func (s *Server) LastTraceID() string {
	v, _ := s.lastTrace.Load().(string)
	return v
}

func (s *Server) addUserLocked(name, email, password string) *account {
	s.nextID++
	a := &account{
		user: models.User{
			ID:        s.nextID,
			Name:      name,
			Email:     email,
			CreatedAt: "2026-01-01T00:00:00.000000Z",
			UpdatedAt: "2026-01-01T00:00:00.000000Z",
		},
		password: password,
	}
	s.users[a.user.ID] = a
	return a
}

func (s *Server) issueTokenLocked(userID int64) string {
	s.tokenSeq++
	token := fmt.Sprintf("%d|token-%d", s.tokenSeq, userID)
	s.tokens[token] = userID
	return token
}

package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func decode(t *testing.T, body []byte) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestServer_AuthShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape AuthShape
		keys  []string
	}{
		{"data wrapped", ShapeDataWrapped, []string{"data", "message"}},
		{"flat token", ShapeFlatToken, []string{"token", "user"}},
		{"access token", ShapeAccessToken, []string{"access_token", "token_type", "user"}},
		{"message only", ShapeMessageOnly, []string{"message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(t)
			srv.AddUser("Ann", "ann@example.com", "secret123")
			srv.SetAuthShape(tt.shape)

			resp, err := utils.NewHTTPClient(srv.BaseURL(), 0).R().
				SetBody(models.LoginRequest{Email: "ann@example.com", Password: "secret123"}).
				Post("/login")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode())

			body := decode(t, resp.Body())
			for _, k := range tt.keys {
				assert.Contains(t, body, k)
			}
		})
	}
}

func TestServer_LoginWrongPassword(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")

	resp, err := utils.NewHTTPClient(srv.BaseURL(), 0).R().
		SetBody(models.LoginRequest{Email: "ann@example.com", Password: "nope"}).
		Post("/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.Contains(t, decode(t, resp.Body()), "errors")
}

func TestServer_RegisterValidation(t *testing.T) {
	srv := NewServer(t)

	resp, err := utils.NewHTTPClient(srv.BaseURL(), 0).R().
		SetBody(models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret123", PasswordConfirmation: "other"}).
		Post("/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
}

func TestServer_ProtectedRoutes(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")
	token := srv.IssueToken("ann@example.com")
	client := utils.NewHTTPClient(srv.BaseURL(), 0)

	resp, err := client.R().Get("/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().SetAuthToken(token).SetHeader(traceIDHeader, "trace-1").Get("/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "trace-1", resp.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-1", srv.LastTraceID())
	assert.Equal(t, 1, srv.UserCalls())

	srv.RevokeAll()
	resp, err = client.R().SetAuthToken(token).Get("/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestServer_LogoutRevokesToken(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")
	token := srv.IssueToken("ann@example.com")
	client := utils.NewHTTPClient(srv.BaseURL(), 0)

	srv.FailLogout(true)
	resp, err := client.R().SetAuthToken(token).Post("/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())

	srv.FailLogout(false)
	resp, err = client.R().SetAuthToken(token).Post("/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().SetAuthToken(token).Get("/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestServer_ExpensePagination(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")
	client := utils.NewHTTPClient(srv.BaseURL(), 0).SetAuthToken(srv.IssueToken("ann@example.com"))

	for i := 1; i <= 3; i++ {
		resp, err := client.R().
			SetBody(models.CreateExpenseRequest{Amount: float64(i), Description: "x", CategoryID: 1, ExpenseDate: "2026-01-01"}).
			Post("/expenses")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode())
	}

	var page struct {
		Data []models.Expense `json:"data"`
		Meta models.Meta      `json:"meta"`
	}
	resp, err := client.R().SetQueryParams(map[string]string{"page": "2", "per_page": "2"}).SetResult(&page).Get("/expenses")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, page.Data, 1)
	assert.Equal(t, 3.0, page.Data[0].Amount)
	assert.Equal(t, models.Meta{CurrentPage: 2, LastPage: 2, PerPage: 2, Total: 3}, page.Meta)
}

func TestServer_ValidationErrors(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser("Ann", "ann@example.com", "secret123")
	client := utils.NewHTTPClient(srv.BaseURL(), 0).SetAuthToken(srv.IssueToken("ann@example.com"))

	resp, err := client.R().
		SetBody(models.CreateExpenseRequest{Amount: 5, CategoryID: 1, ExpenseDate: "yesterday"}).
		Post("/expenses")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &body))
	assert.Contains(t, body.Errors, "expense_date")

	resp, err = client.R().SetBody(models.CategoryRequest{Name: "Food", Color: ptr("blue")}).Post("/categories")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
}

func TestServer_LogsRequests(t *testing.T) {
	buf := &lockedBuffer{}
	srv := NewServer(t, WithLogger(&logger.Logger{Logger: zerolog.New(buf)}))

	resp, err := utils.NewHTTPClient(srv.BaseURL(), 0).R().SetHeader(traceIDHeader, "trace-42").Get("/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// the entry is written after the response has been flushed
	assert.Eventually(t, func() bool { return strings.Contains(buf.String(), `"status":401`) }, time.Second, 10*time.Millisecond)
	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"uri":"/api/user"`)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func ptr[T any](v T) *T { return &v }

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens store.TokenStorage

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the underlying HTTP client with the resolved base URL and request timeout,
// and restores the bearer token persisted in tokens.
//
// Storage never makes construction fail: a nil tokens disables persistence
// and a read error is logged, leaving the adapter anonymous. Returns an error
// only if cfg.HTTPAddress is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens store.TokenStorage, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}

	if tokens != nil {
		token, err := tokens.LoadToken(context.Background())
		if err != nil {
			logger.Warn().Err(err).
				Str("func", "NewHTTPServerAdapter").
				Msg("persisted token is unreadable, starting anonymous")
		}
		h.token = strings.TrimSpace(token)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. Memory is updated first so that the
// in-memory token stays authoritative when persistence fails.
func (h *httpServerAdapter) SetToken(ctx context.Context, token string) {
	token = strings.TrimSpace(token)

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	if h.tokens == nil {
		return
	}
	if err := h.tokens.SaveToken(ctx, token); err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.SetToken").
			Bool("clear", token == "").
			Msg("failed to persist token")
	}
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Request implements [ServerAdapter].
func (h *httpServerAdapter) Request(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (*models.Envelope, error) {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}
	for _, opt := range opts {
		opt(req)
	}

	return h.do(req, method, endpoint, app.MsgAPIRequestFailed)
}

// UploadReceipt implements [ServerAdapter]. Content-Type is left to resty so
// that it carries the multipart boundary.
func (h *httpServerAdapter) UploadReceipt(ctx context.Context, fileName string, file io.Reader) (*models.Envelope, error) {
	req := h.authedRequest(ctx).
		SetFileReader("receipt_image", fileName, file)

	return h.do(req, resty.MethodPost, "/receipts/upload", app.MsgUploadFailed)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	traceID := utils.TraceIDFrom(utils.GetTraceIDFromContext(ctx))

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) do(req *resty.Request, method, endpoint, fallback string) (*models.Envelope, error) {
	log := h.logger.WithTraceID(req.Header.Get(traceIDHeader))

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.do").
			Str("method", method).
			Str("endpoint", endpoint).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, endpoint, err)
	}

	success := resp.IsSuccess()
	env, parseErr := parseEnvelope(resp.Body())
	if parseErr != nil && success {
		log.Err(parseErr).
			Str("func", "httpServerAdapter.do").
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Msg("malformed response body")
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, parseErr)
	}

	if err = mapHTTPError(resp, env, fallback); err != nil {
		log.Warn().
			Str("func", "httpServerAdapter.do").
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Msg(err.Error())
		return env, err
	}

	log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Msg("request completed")
	return env, nil
}

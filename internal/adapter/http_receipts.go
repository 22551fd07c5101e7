package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// GetReceiptImageURL implements [ServerAdapter] via GET /receipts/{path}/url.
// The stored path usually contains slashes, so it is escaped as a single
// path segment.
func (h *httpServerAdapter) GetReceiptImageURL(ctx context.Context, path string) (string, error) {
	env, err := h.Request(ctx, http.MethodGet, "/receipts/"+url.PathEscape(path)+"/url", nil)
	if err != nil {
		return "", err
	}

	res, err := DecodeData[models.ReceiptURL](env)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client rooted at baseURL.
// Every request carries JSON Accept and Content-Type headers unless the
// request overrides them. A non-positive timeout leaves the client without a
// deadline; callers then rely on the request context.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000/api", 15*time.Second)
//	resp, err := client.R().Get("/user")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

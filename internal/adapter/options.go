package adapter

import "github.com/go-resty/resty/v2"

// RequestOption customizes a single request built by Request.
type RequestOption func(*resty.Request)

// WithHeader overrides or adds a request header. It takes precedence over the
// default JSON headers.
func WithHeader(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParam(key, value)
	}
}

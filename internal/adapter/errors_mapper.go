package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// parseEnvelope decodes a response body regardless of its status. An empty
// body yields an empty envelope. A top-level JSON array is kept as Data.
func parseEnvelope(body []byte) (*models.Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &models.Envelope{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}

	raw := json.RawMessage(bytes.Clone(trimmed))
	if trimmed[0] != '{' {
		return &models.Envelope{Data: raw, Raw: raw}, nil
	}

	var env models.Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	env.Raw = raw
	return &env, nil
}

// mapHTTPError turns a non-2xx response into a [*RequestError]. The server
// message is preferred; fallback is used when the body carries none or
// cannot be parsed.
func mapHTTPError(resp *resty.Response, env *models.Envelope, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reqErr := &RequestError{StatusCode: resp.StatusCode(), Message: fallback}
	if env != nil {
		if env.Message != "" {
			reqErr.Message = env.Message
		}
		reqErr.Errors = env.Errors
	}
	return reqErr
}

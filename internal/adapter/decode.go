package adapter

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// DecodeData decodes the payload of env into T. The data member is used when
// present; otherwise the whole body is decoded, which covers endpoints that
// answer with a flat object. A flat body made only of envelope members, or
// one that decodes into a zero value, is reported as malformed.
func DecodeData[T any](env *models.Envelope) (T, error) {
	var out T
	if env == nil {
		return out, fmt.Errorf("%w: nil envelope", ErrMalformedResponse)
	}

	if env.HasData() {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return out, nil
	}

	if len(env.Raw) == 0 {
		return out, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if onlyEnvelopeMembers(env.Raw) {
		return out, fmt.Errorf("%w: no payload in response", ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if reflect.ValueOf(&out).Elem().IsZero() {
		return out, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	return out, nil
}

var envelopeMembers = map[string]struct{}{
	"data":    {},
	"message": {},
	"errors":  {},
	"meta":    {},
}

func onlyEnvelopeMembers(raw json.RawMessage) bool {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return false
	}
	for key := range members {
		if _, ok := envelopeMembers[key]; !ok {
			return false
		}
	}
	return true
}

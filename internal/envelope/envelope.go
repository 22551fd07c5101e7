// Package envelope normalizes the response shapes of the expense API into
// the token and user pair the session needs.
//
// The backend is inconsistent about where it puts the credentials. Auth
// responses are tried against an ordered list of extractors, and the first
// one that recovers both a token and a user wins. Nothing here performs I/O.
package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/models"
)

var (
	// ErrNoAuthPair is returned when no extractor recovers a token and user.
	ErrNoAuthPair = errors.New("response carries no token and user")
	// ErrNoUser is returned when no user record can be found in a body.
	ErrNoUser = errors.New("response carries no user")
)

// AuthExtractor tries to recover a token and user from a decoded JSON object.
type AuthExtractor func(raw map[string]json.RawMessage) (models.AuthPair, bool)

// AuthExtractors is the precedence order used by [ExtractAuth].
var AuthExtractors = []AuthExtractor{
	fromDataWrapped,
	fromFlatToken,
	fromFlatAccessToken,
}

// ExtractAuth returns the first pair recovered by [AuthExtractors].
// Bodies that are not JSON objects yield [ErrNoAuthPair].
func ExtractAuth(body []byte) (models.AuthPair, error) {
	raw, ok := decodeObject(body)
	if !ok {
		return models.AuthPair{}, ErrNoAuthPair
	}

	for _, extract := range AuthExtractors {
		if pair, ok := extract(raw); ok {
			return pair, nil
		}
	}
	return models.AuthPair{}, ErrNoAuthPair
}

// {"data": {"token": "...", "user": {...}}}
func fromDataWrapped(raw map[string]json.RawMessage) (models.AuthPair, bool) {
	data, ok := decodeObject(raw["data"])
	if !ok {
		return models.AuthPair{}, false
	}
	return pairFrom(data, "token")
}

// {"token": "...", "user": {...}}
func fromFlatToken(raw map[string]json.RawMessage) (models.AuthPair, bool) {
	return pairFrom(raw, "token")
}

// {"access_token": "...", "user": {...}}
func fromFlatAccessToken(raw map[string]json.RawMessage) (models.AuthPair, bool) {
	return pairFrom(raw, "access_token")
}

func pairFrom(obj map[string]json.RawMessage, tokenField string) (models.AuthPair, bool) {
	var token string
	if err := json.Unmarshal(obj[tokenField], &token); err != nil {
		return models.AuthPair{}, false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return models.AuthPair{}, false
	}

	user, ok := decodeUser(obj["user"])
	if !ok {
		return models.AuthPair{}, false
	}
	return models.AuthPair{Token: token, User: user}, true
}

// ExtractUser finds the user record in a "get current user" response. The
// data member wins when present; otherwise a flat "user" member is used, and
// finally the body itself when it looks like a user.
func ExtractUser(body []byte) (models.User, error) {
	raw, ok := decodeObject(body)
	if !ok {
		return models.User{}, ErrNoUser
	}

	if data, present := raw["data"]; present && !isNull(data) {
		if user, ok := decodeUser(data); ok {
			return user, nil
		}
		return models.User{}, ErrNoUser
	}

	if user, ok := decodeUser(raw["user"]); ok {
		return user, nil
	}

	if _, hasID := raw["id"]; hasID {
		if user, ok := decodeUser(body); ok {
			return user, nil
		}
	}
	if _, hasEmail := raw["email"]; hasEmail {
		if user, ok := decodeUser(body); ok {
			return user, nil
		}
	}
	return models.User{}, ErrNoUser
}

func decodeObject(b []byte) (map[string]json.RawMessage, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func decodeUser(b json.RawMessage) (models.User, bool) {
	if _, ok := decodeObject(b); !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(b, &user); err != nil || user.IsZero() {
		return models.User{}, false
	}
	return user, true
}

func isNull(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || string(b) == "null"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-keeper/models"
)

const userJSON = `{"id":1,"name":"Ann","email":"a@b.com","email_verified_at":null,
	"created_at":"2026-01-01T00:00:00.000000Z","updated_at":"2026-01-02T00:00:00.000000Z"}`

func TestExtractAuth_AllShapesAgree(t *testing.T) {
	shapes := map[string]string{
		"data wrapped": `{"data":{"token":"T1","user":` + userJSON + `},"message":"ok"}`,
		"flat token":   `{"token":"T1","user":` + userJSON + `}`,
		"access token": `{"access_token":"T1","token_type":"Bearer","user":` + userJSON + `}`,
	}

	var pairs []models.AuthPair
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			pair, err := ExtractAuth([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, "T1", pair.Token)
			assert.Equal(t, int64(1), pair.User.ID)
			assert.Equal(t, "a@b.com", pair.User.Email)
			pairs = append(pairs, pair)
		})
	}

	require.Len(t, pairs, 3)
	assert.Equal(t, pairs[0], pairs[1])
	assert.Equal(t, pairs[1], pairs[2])
}

func TestExtractAuth_Precedence(t *testing.T) {
	body := `{"data":{"token":"WRAPPED","user":{"id":1}},"token":"FLAT","user":{"id":2},"access_token":"ACCESS"}`

	pair, err := ExtractAuth([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "WRAPPED", pair.Token)
	assert.Equal(t, int64(1), pair.User.ID)

	body = `{"token":"FLAT","access_token":"ACCESS","user":{"id":2}}`
	pair, err = ExtractAuth([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "FLAT", pair.Token)
}

func TestExtractAuth_IncompleteDataFallsThrough(t *testing.T) {
	body := `{"data":{"user":{"id":5}},"token":"T5","user":{"id":5}}`

	pair, err := ExtractAuth([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "T5", pair.Token)
}

func TestExtractAuth_NoPair(t *testing.T) {
	bodies := []string{
		`{"errors":{"email":["invalid"]}}`,
		`{"token":"T1"}`,
		`{"user":{"id":1}}`,
		`{"token":"","user":{"id":1}}`,
		`{"token":"T1","user":{}}`,
		`{"token":42,"user":{"id":1}}`,
		`{"data":null}`,
		`[{"token":"T1"}]`,
		``,
		`not json`,
	}

	for _, body := range bodies {
		_, err := ExtractAuth([]byte(body))
		assert.ErrorIs(t, err, ErrNoAuthPair, body)
	}
}

func TestExtractAuth_CustomOrder(t *testing.T) {
	saved := AuthExtractors
	t.Cleanup(func() { AuthExtractors = saved })

	AuthExtractors = []AuthExtractor{fromFlatAccessToken, fromFlatToken}

	pair, err := ExtractAuth([]byte(`{"token":"FLAT","access_token":"ACCESS","user":{"id":2}}`))
	require.NoError(t, err)
	assert.Equal(t, "ACCESS", pair.Token)
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID int64
	}{
		{"data wrapped", `{"data":` + userJSON + `}`, 1},
		{"flat user member", `{"user":{"id":2,"email":"c@d.com"}}`, 2},
		{"bare user", userJSON, 1},
		{"bare user with email only", `{"email":"e@f.com","name":"E"}`, 0},
		{"data wins over flat", `{"data":{"id":3},"user":{"id":4}}`, 3},
		{"null data falls back", `{"data":null,"user":{"id":4}}`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := ExtractUser([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.False(t, user.IsZero())
		})
	}
}

func TestExtractUser_Unrecognized(t *testing.T) {
	bodies := []string{
		`{"message":"Unauthenticated."}`,
		`{"data":"oops"}`,
		`{"data":{}}`,
		`{"data":{"name":""},"user":{"id":1}}`,
		`[]`,
		``,
		`{`,
	}

	for _, body := range bodies {
		_, err := ExtractUser([]byte(body))
		assert.ErrorIs(t, err, ErrNoUser, body)
	}
}

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-expense-keeper/models"
)

func TestParseEnvelope(t *testing.T) {
	env, err := parseEnvelope([]byte(`  `))
	require.NoError(t, err)
	assert.False(t, env.HasData())

	env, err = parseEnvelope([]byte(`[{"id":1}]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(env.Data))

	env, err = parseEnvelope([]byte(`{"data":{"id":1},"message":"ok","meta":{"total":3}}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Message)
	assert.Equal(t, 3, env.Meta.Total)

	_, err = parseEnvelope([]byte(`{"errors":"not a map"}`))
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = parseEnvelope([]byte(`nope`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeData(t *testing.T) {
	wrapped, _ := parseEnvelope([]byte(`{"data":{"id":3,"name":"Food"}}`))
	flat, _ := parseEnvelope([]byte(`{"id":4,"name":"Rent"}`))

	c, err := DecodeData[models.Category](wrapped)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	c, err = DecodeData[models.Category](flat)
	require.NoError(t, err)
	assert.Equal(t, "Rent", c.Name)

	_, err = DecodeData[models.Category](&models.Envelope{})
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = DecodeData[models.Category](nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = DecodeData[[]models.Category](wrapped)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	messageOnly, _ := parseEnvelope([]byte(`{"message":"ok"}`))
	_, err = DecodeData[models.Category](messageOnly)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	nullData, _ := parseEnvelope([]byte(`{"data":null,"message":"Expense updated"}`))
	_, err = DecodeData[models.Expense](nullData)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	emptyObject, _ := parseEnvelope([]byte(`{}`))
	_, err = DecodeData[models.Expense](emptyObject)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	unknownOnly, _ := parseEnvelope([]byte(`{"status":"queued"}`))
	_, err = DecodeData[models.Category](unknownOnly)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

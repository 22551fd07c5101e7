package adapter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/mock"
	"github.com/MKhiriev/go-expense-keeper/internal/session"
)

var testAdapterConfig = config.ClientAdapter{HTTPAddress: "http://localhost/api", RequestTimeout: time.Second}

func TestNewHTTPServerAdapter_UnreadableStorage(t *testing.T) {
	tokens := mock.NewMockTokenStorage(gomock.NewController(t))
	tokens.EXPECT().LoadToken(gomock.Any()).Return("", errors.New("locked"))

	a, err := adapter.NewHTTPServerAdapter(testAdapterConfig, tokens, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, a.Token())
}

func TestUnreadableStorage_IsRewrittenOnInitialize(t *testing.T) {
	tokens := mock.NewMockTokenStorage(gomock.NewController(t))
	tokens.EXPECT().LoadToken(gomock.Any()).Return("", errors.New("corrupt"))
	tokens.EXPECT().SaveToken(gomock.Any(), "").Return(nil).Times(1)

	a, err := adapter.NewHTTPServerAdapter(testAdapterConfig, tokens, logger.Nop())
	require.NoError(t, err)

	s := session.New(a, logger.Nop())
	s.Initialize(context.Background())

	assert.True(t, s.State().IsInitialized)
	assert.Empty(t, a.Token())
}

func TestSetToken_PersistenceFailureKeepsMemory(t *testing.T) {
	tokens := mock.NewMockTokenStorage(gomock.NewController(t))
	tokens.EXPECT().LoadToken(gomock.Any()).Return("", nil)
	tokens.EXPECT().SaveToken(gomock.Any(), "in-memory").Return(errors.New("quota exceeded"))

	a, err := adapter.NewHTTPServerAdapter(testAdapterConfig, tokens, logger.Nop())
	require.NoError(t, err)

	a.SetToken(context.Background(), "  in-memory  ")
	assert.Equal(t, "in-memory", a.Token())
}

func TestSetToken_ClearIsPersisted(t *testing.T) {
	tokens := mock.NewMockTokenStorage(gomock.NewController(t))
	gomock.InOrder(
		tokens.EXPECT().LoadToken(gomock.Any()).Return("persisted", nil),
		tokens.EXPECT().SaveToken(gomock.Any(), "").Return(nil),
	)

	a, err := adapter.NewHTTPServerAdapter(testAdapterConfig, tokens, logger.Nop())
	require.NoError(t, err)
	require.Equal(t, "persisted", a.Token())

	a.SetToken(context.Background(), "")
	assert.Empty(t, a.Token())
}

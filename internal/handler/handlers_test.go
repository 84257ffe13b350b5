package handler

import (
	"testing"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/mock"
	"github.com/MKhiriev/go-workers-bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig(address, webhookURL string) config.StructuredConfig {
	return config.StructuredConfig{
		Telegram: config.Telegram{BotToken: "123:token", WebhookURL: webhookURL},
		Server:   config.Server{HTTPAddress: address},
	}
}

// TestNewHandlers_Polling verifies that without a webhook URL both handlers
// are created and the HTTP handler has no webhook route.
func TestNewHandlers_Polling(t *testing.T) {
	messenger := mock.NewMockMessenger(gomock.NewController(t))

	h, err := NewHandlers(&service.Services{}, messenger, newTestConfig(":3000", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h.Telegram)
	require.NotNil(t, h.HTTP)
}

// TestNewHandlers_OnlyTelegram verifies that an empty HTTP address leaves the
// HTTP handler nil.
func TestNewHandlers_OnlyTelegram(t *testing.T) {
	messenger := mock.NewMockMessenger(gomock.NewController(t))

	h, err := NewHandlers(&service.Services{}, messenger, newTestConfig("", ""), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.Telegram)
	assert.Nil(t, h.HTTP)
}

func TestNewHandlers_WebhookWithoutAddress(t *testing.T) {
	messenger := mock.NewMockMessenger(gomock.NewController(t))

	h, err := NewHandlers(&service.Services{}, messenger, newTestConfig("", "https://bot.example.com"), logger.Nop())

	require.ErrorIs(t, err, errWebhookNeedsHTTP)
	assert.Nil(t, h)
}

func TestNewHandlers_MissingDependencies(t *testing.T) {
	h, err := NewHandlers(nil, nil, newTestConfig(":3000", ""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	messenger := mock.NewMockMessenger(gomock.NewController(t))
	cfg := newTestConfig(":3000", "https://bot.example.com")

	h1, err1 := NewHandlers(&service.Services{}, messenger, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, messenger, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.Telegram, h2.Telegram)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTPAddress
// initialises the HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    ":8080",
		RequestTimeout: time.Second,
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddresses verifies that an empty server configuration
// is rejected with errNoHandlersAreCreated.
func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, newTestLogger())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_RouterBuilds verifies that the HTTP handler produces a
// router.
func TestNewHandlers_RouterBuilds(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: "localhost:3000"}, newTestLogger())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}

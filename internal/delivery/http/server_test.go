package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pickup/config"
	httpmiddleware "pickup/internal/delivery/http/middleware"
	"pickup/internal/delivery/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type stubLifecycle struct{}

func (stubLifecycle) Append(fx.Hook) {}

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.Port = 3001
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	d, err := NewServer(HTTPParams{
		Lifecycle:       stubLifecycle{},
		Config:          cfg,
		Logger:          logger,
		RouterParams:    router.RouterParams{},
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RequestID:       httpmiddleware.NewRequestIDMiddleware(logger),
	})
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.server.Server.IdleTimeout)
}

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPAddress)
}

func TestNewServer_AddressInUse(t *testing.T) {
	first, err := NewServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(http.NotFoundHandler(), config.Server{HTTPAddress: first.Addr()}, logger.Nop())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, first.Run(ctx))
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv, err := NewServer(handler, config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + srv.Addr() + "/ping")
	assert.Error(t, err)
}

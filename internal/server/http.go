package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
}

func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return h.server.Shutdown(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer binds cfg.HTTPAddress and returns a [Server] serving handler on
// it. The listener is open when NewServer returns, so Addr reports the actual
// port when ":0" was requested.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPAddress
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddress, err)
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = config.DefaultShutdownTimeout
	}

	return &server{
		httpServer: &httpServer{
			server: &http.Server{
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
			listener: listener,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()
	s.logger.Info().Str("address", s.Addr()).Msg("HTTP server launched")

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")
	if err := s.httpServer.shutdown(s.shutdownTimeout); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-serveErr; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

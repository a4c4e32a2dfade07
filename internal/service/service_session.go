package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/models"
)

// probeLimit is the row count requested by the probe call.
const probeLimit = 1

type sessionService struct {
	connector adapter.Connector
	coreAPI   config.CoreAPI

	logger *logger.Logger
}

func NewSessionService(coreAPI config.CoreAPI, connector adapter.Connector, logger *logger.Logger) SessionService {
	return &sessionService{connector: connector, coreAPI: coreAPI, logger: logger}
}

func (s *sessionService) Authenticate(ctx context.Context, server string, credentials models.Credentials) (string, error) {
	return authenticate(ctx, s.connector, server, credentials)
}

func (s *sessionService) AuthenticatedSession(ctx context.Context) (adapter.Session, error) {
	token, err := authenticate(ctx, s.connector, s.coreAPI.Server, models.Credentials{
		Login:    s.coreAPI.Username,
		Password: s.coreAPI.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("service account login: %w", err)
	}

	session, err := s.connector.Connect(s.coreAPI.Server, token)
	if err != nil {
		return nil, err
	}

	if err = session.Call(ctx, adapter.MethodClientsSearch, map[string]any{"limit": probeLimit}, nil); err != nil {
		s.logger.Warn().Err(err).Str("server", session.Server()).Msg("probe call failed after login")
		return nil, fmt.Errorf("%w: %w", ErrProbeFailed, err)
	}

	return session, nil
}

// authenticate logs in with an unauthenticated session bound to server.
func authenticate(ctx context.Context, connector adapter.Connector, server string, credentials models.Credentials) (string, error) {
	session, err := connector.Connect(server, "")
	if err != nil {
		return "", err
	}

	var result models.AuthResult
	err = session.Call(ctx, adapter.MethodAuthenticate, map[string]any{
		"login":    credentials.Login,
		"password": credentials.Password,
	}, &result)
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(result.Token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/models"
)

type adminAuthService struct {
	connector adapter.Connector
	admin     config.Admin
	server    string

	logger *logger.Logger
}

// NewAdminAuthService constructs an [AdminAuthService] that authenticates as
// cfg.Admin against cfg.AdminServer().
func NewAdminAuthService(cfg *config.Config, connector adapter.Connector, logger *logger.Logger) AdminAuthService {
	return &adminAuthService{
		connector: connector,
		admin:     cfg.Admin,
		server:    cfg.AdminServer(),
		logger:    logger,
	}
}

// AuthorizeUser implements [AdminAuthService].
//
// The admin and the candidate each get their own session: the admin session
// carries the admin token and is only used for the role lookup, the candidate
// is authenticated on a session without any token.
func (s *adminAuthService) AuthorizeUser(ctx context.Context, username, password string) (bool, error) {
	log := s.logger.With().Str("login", username).Logger()

	adminToken, err := authenticate(ctx, s.connector, s.server, models.Credentials{
		Login:    s.admin.Login,
		Password: s.admin.Password,
	})
	if err != nil {
		log.Warn().Err(err).Msg("admin login failed")
		return false, fmt.Errorf("%w: %w", ErrAdminLogin, err)
	}

	adminSession, err := s.connector.Connect(s.server, adminToken)
	if err != nil {
		return false, err
	}

	candidateSession, err := s.connector.Connect(s.server, "")
	if err != nil {
		return false, err
	}

	var candidateLogin json.RawMessage
	err = candidateSession.Call(ctx, adapter.MethodAuthenticate, map[string]any{
		"login":    username,
		"password": password,
	}, &candidateLogin)

	var rpcErr *adapter.RPCError
	switch {
	case errors.As(err, &rpcErr):
		log.Info().Int("code", rpcErr.Code).Msg("candidate rejected by coreapi")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("candidate login: %w", err)
	case !isTruthy(candidateLogin):
		log.Info().Msg("candidate login returned an empty response")
		return false, nil
	}

	var users []models.IAMUser
	if err = adminSession.Call(ctx, adapter.MethodUsersSearch, map[string]any{"login": username}, &users); err != nil {
		return false, fmt.Errorf("role lookup: %w", err)
	}
	if len(users) == 0 {
		return false, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	authorized := users[0].RolesName == s.admin.RoleName
	log.Info().Bool("authorized", authorized).Str("roles_name", users[0].RolesName).Msg("authorization decided")

	return authorized, nil
}

// isTruthy reports whether a JSON value is non-empty: anything except null,
// false, 0, "", [] and {}.
func isTruthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/store"
	"github.com/MKhiriev/go-coreapi/internal/utils"
	"github.com/MKhiriev/go-coreapi/models"
)

type tokenService struct {
	connector adapter.Connector
	store     store.ConfigStore

	coreAPI  config.CoreAPI
	tokenKey string

	mu      sync.Mutex
	current string

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] seeded with the token found in
// cfg.CoreAPI.Token. New tokens are written to configStore under
// cfg.Store.TokenKey.
func NewTokenService(cfg *config.Config, connector adapter.Connector, configStore store.ConfigStore, logger *logger.Logger) TokenService {
	return &tokenService{
		connector: connector,
		store:     configStore,
		coreAPI:   cfg.CoreAPI,
		tokenKey:  cfg.Store.TokenKey,
		current:   cfg.CoreAPI.Token,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *tokenService) EnsureValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := utils.ReadClaimsUnverified(s.current)
	if err != nil {
		s.logger.Debug().Err(err).Msg("cached token cannot be decoded, re-authenticating")
		return s.refresh(ctx)
	}

	if token.ExpiredAt(s.now()) {
		exp, _ := token.Expiry()
		s.logger.Debug().Time("exp", exp).Msg("cached token expired, re-authenticating")
		return s.refresh(ctx)
	}

	return s.current, nil
}

func (s *tokenService) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh(ctx)
}

func (s *tokenService) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// refresh must be called with s.mu held.
func (s *tokenService) refresh(ctx context.Context) (string, error) {
	token, err := authenticate(ctx, s.connector, s.coreAPI.Server, models.Credentials{
		Login:    s.coreAPI.Username,
		Password: s.coreAPI.Password,
	})
	if err != nil {
		return "", fmt.Errorf("re-authenticate service account: %w", err)
	}

	s.current = token

	if err = s.store.Set(s.tokenKey, token); err != nil {
		s.logger.Error().Err(err).Str("path", s.store.Path()).Msg("failed to persist refreshed token")
		return token, fmt.Errorf("%w: %w", ErrPersistToken, err)
	}

	s.logger.Info().Str("path", s.store.Path()).Str("key", s.tokenKey).Msg("token refreshed")
	return token, nil
}

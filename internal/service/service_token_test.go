// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/mock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestTokenSvc(t *testing.T, ctrl *gomock.Controller, cached string) (*tokenService, *mock.MockConnector, *mock.MockSession, *mock.MockConfigStore) {
	t.Helper()
	connector := mock.NewMockConnector(ctrl)
	session := mock.NewMockSession(ctrl)
	configStore := mock.NewMockConfigStore(ctrl)
	configStore.EXPECT().Path().Return("/tmp/.env").AnyTimes()

	cfg := testConfig()
	cfg.CoreAPI.Token = cached

	svc := NewTokenService(cfg, connector, configStore, logger.Nop()).(*tokenService)
	svc.now = func() time.Time { return fixedNow }

	return svc, connector, session, configStore
}

// ── EnsureValidToken ─────────────────────────────────────────────────────────

func TestTokenService_EnsureValidToken_FutureExpiry_NoReauth(t *testing.T) {
	ctrl := gomock.NewController(t)
	cached := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	svc, _, _, _ := newTestTokenSvc(t, ctrl, cached)

	got, err := svc.EnsureValidToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestTokenService_EnsureValidToken_NonStringRegisteredClaims_NoReauth(t *testing.T) {
	ctrl := gomock.NewController(t)
	cached := mintToken(t, jwt.MapClaims{
		"exp": fixedNow.Add(time.Hour).Unix(),
		"sub": 42,
		"jti": 7,
	})
	svc, _, _, _ := newTestTokenSvc(t, ctrl, cached)

	got, err := svc.EnsureValidToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestTokenService_EnsureValidToken_ExpiryEqualToNow_NoReauth(t *testing.T) {
	ctrl := gomock.NewController(t)
	cached := tokenExpiringAt(t, fixedNow)
	svc, _, _, _ := newTestTokenSvc(t, ctrl, cached)

	got, err := svc.EnsureValidToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestTokenService_EnsureValidToken_PastExpiry_Reauthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cached := tokenExpiringAt(t, fixedNow.Add(-time.Second))
	fresh := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	svc, connector, session, configStore := newTestTokenSvc(t, ctrl, cached)

	gomock.InOrder(
		connector.EXPECT().Connect(testServer, "").Return(session, nil),
		session.EXPECT().
			Call(gomock.Any(), adapter.MethodAuthenticate, authParams(testLogin, testPassword), gomock.Any()).
			DoAndReturn(returnResult(map[string]any{"token": fresh})),
		configStore.EXPECT().Set(testTokenKey, fresh).Return(nil),
	)

	got, err := svc.EnsureValidToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, fresh, svc.Current())
}

func TestTokenService_EnsureValidToken_ReusesRefreshedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	fresh := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	svc, connector, session, configStore := newTestTokenSvc(t, ctrl, "")

	expectLogin(connector, session, testServer, testLogin, testPassword, fresh)
	configStore.EXPECT().Set(testTokenKey, fresh).Return(nil)

	for i := 0; i < 3; i++ {
		got, err := svc.EnsureValidToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	}
}

// TestTokenService_EnsureValidToken_EpochOneExpiry checks that a claim set
// {"exp": 1} causes exactly one re-authentication per call, even when the
// server keeps handing out such tokens.
func TestTokenService_EnsureValidToken_EpochOneExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	epochOne := mintToken(t, jwt.MapClaims{"exp": 1})
	svc, connector, session, configStore := newTestTokenSvc(t, ctrl, epochOne)

	const calls = 3
	connector.EXPECT().Connect(testServer, "").Return(session, nil).Times(calls)
	session.EXPECT().
		Call(gomock.Any(), adapter.MethodAuthenticate, gomock.Any(), gomock.Any()).
		DoAndReturn(returnResult(map[string]any{"token": epochOne})).
		Times(calls)
	configStore.EXPECT().Set(testTokenKey, epochOne).Return(nil).Times(calls)

	for i := 0; i < calls; i++ {
		got, err := svc.EnsureValidToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, epochOne, got)
	}
}

func TestTokenService_EnsureValidToken_UndecodableTokens_Reauthenticate(t *testing.T) {
	tests := []struct {
		name   string
		cached func(t *testing.T) string
	}{
		{name: "empty", cached: func(*testing.T) string { return "" }},
		{name: "garbage", cached: func(*testing.T) string { return "not-a-jwt" }},
		{name: "bad base64 payload", cached: func(*testing.T) string { return "eyJhbGciOiJIUzI1NiJ9.%%%.sig" }},
		{name: "no exp claim", cached: func(t *testing.T) string { return mintToken(t, jwt.MapClaims{"sub": "x"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fresh := tokenExpiringAt(t, fixedNow.Add(time.Hour))
			svc, connector, session, configStore := newTestTokenSvc(t, ctrl, tt.cached(t))

			expectLogin(connector, session, testServer, testLogin, testPassword, fresh)
			configStore.EXPECT().Set(testTokenKey, fresh).Return(nil)

			got, err := svc.EnsureValidToken(context.Background())

			require.NoError(t, err)
			assert.Equal(t, fresh, got)
		})
	}
}

func TestTokenService_EnsureValidToken_AuthRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, connector, session, _ := newTestTokenSvc(t, ctrl, "")

	connector.EXPECT().Connect(testServer, "").Return(session, nil)
	session.EXPECT().
		Call(gomock.Any(), adapter.MethodAuthenticate, gomock.Any(), gomock.Any()).
		Return(&adapter.RPCError{Code: -32001, Message: "Authentication failed"})

	got, err := svc.EnsureValidToken(context.Background())

	assert.Empty(t, got)
	assert.ErrorIs(t, err, adapter.ErrProtocol)
	var rpcErr *adapter.RPCError
	assert.True(t, errors.As(err, &rpcErr))
	assert.Empty(t, svc.Current())
}

func TestTokenService_EnsureValidToken_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, connector, session, _ := newTestTokenSvc(t, ctrl, "")

	connector.EXPECT().Connect(testServer, "").Return(session, nil)
	session.EXPECT().
		Call(gomock.Any(), adapter.MethodAuthenticate, gomock.Any(), gomock.Any()).
		Return(adapter.ErrTransport)

	got, err := svc.EnsureValidToken(context.Background())

	assert.Empty(t, got)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestTokenService_EnsureValidToken_EmptyTokenInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, connector, session, _ := newTestTokenSvc(t, ctrl, "")

	expectLogin(connector, session, testServer, testLogin, testPassword, "  ")

	got, err := svc.EnsureValidToken(context.Background())

	assert.Empty(t, got)
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestTokenService_EnsureValidToken_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fresh := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	svc, connector, session, configStore := newTestTokenSvc(t, ctrl, "")

	expectLogin(connector, session, testServer, testLogin, testPassword, fresh)
	configStore.EXPECT().Set(testTokenKey, fresh).Return(errors.New("disk full"))

	got, err := svc.EnsureValidToken(context.Background())

	assert.ErrorIs(t, err, ErrPersistToken)
	assert.Equal(t, fresh, got)
	assert.Equal(t, fresh, svc.Current())
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestTokenService_Refresh_IgnoresValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	cached := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	fresh := tokenExpiringAt(t, fixedNow.Add(2*time.Hour))
	svc, connector, session, configStore := newTestTokenSvc(t, ctrl, cached)

	expectLogin(connector, session, testServer, testLogin, testPassword, fresh)
	configStore.EXPECT().Set(testTokenKey, fresh).Return(nil)

	got, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestTokenService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestTokenSvc(t, ctrl, "cached")

	assert.Equal(t, "cached", svc.Current())
}

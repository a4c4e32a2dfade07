// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the CoreAPI client operations on top of the
// JSON-RPC transport in package adapter: token lifecycle management,
// authenticated sessions, the clients/accounts/reports queries and the
// two-tier user authorization check.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService manages the cached CoreAPI bearer token of the service
// account.
type TokenService interface {
	// EnsureValidToken returns the cached token when its claim set can be read
	// and its "exp" claim is not in the past. Otherwise it re-authenticates,
	// persists the new token to the config store and returns it.
	//
	// The claim set is read without signature verification; see
	// [utils.ReadClaimsUnverified]. A token without "exp" is replaced.
	//
	// When the new token cannot be persisted the token is still returned,
	// together with an error wrapping [ErrPersistToken].
	EnsureValidToken(ctx context.Context) (string, error)

	// Refresh re-authenticates unconditionally and persists the new token.
	Refresh(ctx context.Context) (string, error)

	// Current returns the token held in memory without validating it.
	Current() string
}

// SessionService opens CoreAPI sessions.
type SessionService interface {
	// Authenticate calls iam.auth.jwt.authenticate on server with an
	// unauthenticated session and returns the issued token.
	Authenticate(ctx context.Context, server string, credentials models.Credentials) (string, error)

	// AuthenticatedSession logs in with the service account, binds a session
	// to the fresh token and probes it with clients.search(limit=1). A failed
	// probe yields an error wrapping [ErrProbeFailed] and no session.
	AuthenticatedSession(ctx context.Context) (adapter.Session, error)
}

// ClientsService queries CoreAPI clients. Every call opens its own
// authenticated, probed session.
type ClientsService interface {
	// Get returns the client with the given id (clients.get).
	Get(ctx context.Context, id int64) (models.Record, error)

	// Search lists clients (clients.search). When limited is false the
	// fixed upper bound [UnlimitedClientsSearchLimit] is sent.
	Search(ctx context.Context, limited bool, limit int) (models.Records, error)
}

// AccountsService queries CoreAPI client accounts. Every call opens its own
// authenticated, probed session.
type AccountsService interface {
	// Get returns the account with the given id (clients.accounts.get).
	Get(ctx context.Context, id int64) (models.Records, error)

	// SearchByClient lists the accounts of one client
	// (clients.accounts.search with clients_id).
	SearchByClient(ctx context.Context, clientID int64) (models.Records, error)

	// SearchList lists accounts (clients.accounts.search). When limited is
	// false no limit parameter is sent at all.
	SearchList(ctx context.Context, limited bool, limit int) (models.Records, error)
}

// ReportsService queries CoreAPI reports.
type ReportsService interface {
	// QueryXDRs runs reports.xdrs_list.query on a session carrying the token
	// returned by [TokenService.EnsureValidToken]. Empty
	// query.ReturnFields are replaced by [models.DefaultXDRReturnFields].
	QueryXDRs(ctx context.Context, query models.XDRQuery) (models.Records, error)
}

// AdminAuthService authorizes users against the configured admin role.
type AdminAuthService interface {
	// AuthorizeUser reports whether username/password authenticate against
	// CoreAPI AND the user's roles_name equals the configured role exactly.
	//
	// The result is false whenever an error is returned. A candidate that is
	// rejected by CoreAPI yields (false, nil).
	AuthorizeUser(ctx context.Context, username, password string) (bool, error)
}

// TokenKeeperJob keeps the cached token fresh in the background.
type TokenKeeperJob interface {
	// Start launches a goroutine that calls EnsureValidToken every interval.
	// Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop stops the goroutine and waits for it to exit.
	Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to CoreAPI.
//
// CoreAPI speaks JSON-RPC 2.0 over HTTP POST. A [Connector] binds a [Session]
// to one server URL and, optionally, one bearer token; the session then issues
// calls through [Session.Call]. Sessions are cheap and independent: the admin
// and the candidate identities of an authorization check each get their own.
//
// Failures are reported with the sentinel values in errors.go so callers can
// tell a transport failure ([ErrTransport]) from a protocol failure
// ([ErrProtocol], [*RPCError]) using [errors.Is] and [errors.As].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Session is a JSON-RPC client bound to one server and, optionally, one
// bearer token. Every call made through a session carries the same
// Authorization header.
type Session interface {
	// Call invokes method with params and decodes the "result" member of the
	// response into result. A nil result discards the payload.
	//
	// Returns an error wrapping [ErrTransport] when the request cannot be
	// delivered or the server answers with a non-2xx status, an error wrapping
	// [ErrProtocol] when the response is not a valid JSON-RPC 2.0 envelope,
	// and a [*RPCError] when the server reports an application-level error.
	Call(ctx context.Context, method string, params any, result any) error

	// Server returns the normalized URL the session posts to.
	Server() string

	// Token returns the bearer token attached to every call, or an empty
	// string for an unauthenticated session.
	Token() string
}

// Connector creates sessions.
type Connector interface {
	// Connect returns a session bound to server. When token is non-empty it
	// is sent as "Authorization: Bearer <token>" on every call.
	//
	// Returns an error if server is empty or cannot be parsed as a URL.
	Connect(server, token string) (Session, error)
}

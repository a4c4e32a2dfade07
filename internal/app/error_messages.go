// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into response
// bodies by the HTTP authorization gateway.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or lacks the login or the password.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserNotFound is returned when the user is unknown to CoreAPI.
	MsgUserNotFound = "user not found"

	// MsgCoreAPIUnavailable is returned when CoreAPI cannot be reached, the
	// admin login fails or CoreAPI answers with something unusable.
	MsgCoreAPIUnavailable = "coreapi is unavailable"

	// MsgInternalServerError is returned for any other failure.
	MsgInternalServerError = "internal server error"
)

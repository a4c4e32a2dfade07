// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the coreapi command-line application.
//
// It wires configuration loading, the dotenv config store, the JSON-RPC
// connector and the client services into a single urfave/cli application and
// renders command results as JSON, YAML or a table on stdout. Logs go to
// stderr. The serve command runs the HTTP authorization gateway.
package client

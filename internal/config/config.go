// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultEnvFilePath is where the dotenv file is looked up when neither
	// the --env-file flag nor the ENV_FILE variable names one.
	DefaultEnvFilePath = "./config/.env"

	// DefaultShutdownTimeout is used when Server.ShutdownTimeout is zero.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultTokenKey is the dotenv key the cached JWT is read from and
	// persisted under.
	DefaultTokenKey = "JWT_TOKEN"
)

// Config is the top-level configuration container for the CoreAPI client.
// It is populated by merging values from the dotenv file, an optional JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// CoreAPI holds the service account used for token management and
	// domain queries.
	CoreAPI CoreAPI

	// Admin holds the administrative identity used to authorize users.
	Admin Admin

	// Adapter holds outbound transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Store holds the location of the persisted dotenv configuration.
	Store Store

	// Server holds the settings of the HTTP authorization gateway started by
	// "coreapi serve".
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// CoreAPI holds the CoreAPI endpoint, the service account credentials and the
// cached bearer token.
type CoreAPI struct {
	// Server is the JSON-RPC endpoint URL (e.g. "http://10.0.0.1:3080").
	// Env: COREAPI_SERVER
	Server string `env:"COREAPI_SERVER"`

	// Username is the service account login.
	// Env: COREAPI_USERNAME
	Username string `env:"COREAPI_USERNAME"`

	// Password is the service account password.
	// Env: COREAPI_PASSWORD
	Password string `env:"COREAPI_PASSWORD"`

	// Token is the cached JWT as found at startup. It may be empty, expired
	// or malformed; the token manager replaces it when needed.
	// Env: JWT_TOKEN
	Token string `env:"JWT_TOKEN"`
}

// Admin holds the administrative identity whose session is used to look up
// the role of a user being authorized.
type Admin struct {
	// Server is the CoreAPI endpoint used for authorization. Falls back to
	// CoreAPI.Server when empty.
	// Env: VCS_COREAPI
	Server string `env:"VCS_COREAPI"`

	// Login is the administrative account login.
	// Env: VCS_ADMIN
	Login string `env:"VCS_ADMIN"`

	// Password is the administrative account password.
	// Env: VCS_ADMIN_PASSWORD
	Password string `env:"VCS_ADMIN_PASSWORD"`

	// RoleName is the exact role name a user must carry to be authorized.
	// Env: VCS_ADMIN_ROLES_NAME
	RoleName string `env:"VCS_ADMIN_ROLES_NAME"`
}

// Adapter holds outbound JSON-RPC transport settings.
type Adapter struct {
	// RequestTimeout bounds a single JSON-RPC call (e.g. "30s"). Zero keeps
	// the transport default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Store holds the location of the persisted configuration.
type Store struct {
	// EnvFilePath is the dotenv file read at startup and rewritten on every
	// token refresh.
	// Env: ENV_FILE
	EnvFilePath string `env:"ENV_FILE"`

	// TokenKey is the dotenv key the JWT is persisted under.
	// Env: TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`
}

// Server holds the HTTP authorization gateway settings.
type Server struct {
	// HTTPAddress is the listen address, e.g. ":8080".
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the gateway.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// AdminServer returns the endpoint used for user authorization: Admin.Server
// when set, CoreAPI.Server otherwise.
func (cfg *Config) AdminServer() string {
	if cfg.Admin.Server != "" {
		return cfg.Admin.Server
	}
	return cfg.CoreAPI.Server
}

// GetConfig loads, merges, and validates the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. dotenv file (path from overrides, ENV_FILE, or [DefaultEnvFilePath])
//  2. JSON file (path from overrides or CONFIG), when given
//  3. Environment variables
//  4. overrides, typically built from command-line flags (may be nil)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig(overrides *Config) (*Config, error) {
	if overrides == nil {
		overrides = &Config{}
	}

	return newConfigBuilder().
		withDotEnv(resolveEnvFilePath(overrides)).
		withJSON(resolveJSONFilePath(overrides)).
		withEnv().
		withOverrides(overrides).
		build()
}

func resolveEnvFilePath(overrides *Config) string {
	if p := strings.TrimSpace(overrides.Store.EnvFilePath); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("ENV_FILE")); p != "" {
		return p
	}
	return DefaultEnvFilePath
}

func resolveJSONFilePath(overrides *Config) string {
	if p := strings.TrimSpace(overrides.JSONFilePath); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv("CONFIG"))
}

func (cfg *Config) applyDefaults(envFilePath string) {
	if cfg.Store.EnvFilePath == "" {
		cfg.Store.EnvFilePath = envFilePath
	}
	if cfg.Store.TokenKey == "" {
		cfg.Store.TokenKey = DefaultTokenKey
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the settings every command depends on: the location of the
// config store and the key the token is persisted under.
func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.Store.EnvFilePath) == "" || strings.TrimSpace(cfg.Store.TokenKey) == "" {
		return ErrInvalidStoreConfigs
	}

	return nil
}

// ValidateCoreAPI checks that the service account used for token management
// and domain queries is fully configured.
func (cfg *Config) ValidateCoreAPI() error {
	var missing []string
	if cfg.CoreAPI.Server == "" {
		missing = append(missing, "COREAPI_SERVER")
	}
	if cfg.CoreAPI.Username == "" {
		missing = append(missing, "COREAPI_USERNAME")
	}
	if cfg.CoreAPI.Password == "" {
		missing = append(missing, "COREAPI_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidCoreAPIConfigs, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateAdmin checks that the administrative identity used by user
// authorization is fully configured.
func (cfg *Config) ValidateAdmin() error {
	var missing []string
	if cfg.AdminServer() == "" {
		missing = append(missing, "VCS_COREAPI")
	}
	if cfg.Admin.Login == "" {
		missing = append(missing, "VCS_ADMIN")
	}
	if cfg.Admin.Password == "" {
		missing = append(missing, "VCS_ADMIN_PASSWORD")
	}
	if cfg.Admin.RoleName == "" {
		missing = append(missing, "VCS_ADMIN_ROLES_NAME")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidAdminConfigs, strings.Join(missing, ", "))
	}
	return nil
}

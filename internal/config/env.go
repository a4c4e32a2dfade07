// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from process environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [Config] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseEnvMap is like parseEnv but reads variables from vars instead of the
// process environment. It is used for dotenv files so that loading them never
// mutates the environment of the running process.
func parseEnvMap(cfg any, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting dotenv configs: %w", err)
	}

	return nil
}

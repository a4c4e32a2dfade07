package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs     []*Config
	envFilePath string
	dotEnvVars  map[string]string
	dotEnvCfg   *Config
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults(b.envFilePath)
	b.readBackToken(config)
	return config, config.validate()
}

// readBackToken loads the token persisted in the dotenv file under a custom
// Store.TokenKey. A token from the environment, JSON or overrides still wins.
func (b *configBuilder) readBackToken(config *Config) {
	key := strings.ToUpper(strings.TrimSpace(config.Store.TokenKey))
	if key == "" || key == DefaultTokenKey {
		return
	}
	persisted := b.dotEnvVars[key]
	if persisted == "" {
		return
	}
	for _, cfg := range b.configs {
		if cfg != b.dotEnvCfg && cfg.CoreAPI.Token != "" {
			return
		}
	}
	config.CoreAPI.Token = persisted
}

// withDotEnv adds the variables of the dotenv file at path. The resolved path
// becomes the default config store location.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	b.envFilePath = path

	vars, err := readDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	dotEnvCfg := &Config{}
	if err = parseEnvMap(dotEnvCfg, vars); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.dotEnvVars = vars
	b.dotEnvCfg = dotEnvCfg
	b.configs = append(b.configs, dotEnvCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON adds the JSON file at path; an empty path is a no-op.
func (b *configBuilder) withJSON(path string) *configBuilder {
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withOverrides(overrides *Config) *configBuilder {
	if overrides == nil {
		return b
	}

	b.configs = append(b.configs, overrides)
	return b
}

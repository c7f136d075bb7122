// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/foundriesio/sensor-validator/sensor"
)

const (
	AuthTypeNone  = "noauth"
	AuthTypeToken = "token"
	AuthTypeJwt   = "jwt"

	DefaultMinimumFirmware       = sensor.DefaultMinimumFirmware
	DefaultAcceptedConfiguration = sensor.DefaultConfiguration
)

// Config is the sensor-validator server configuration file.
type Config struct {
	Port       uint16     `yaml:"port"`
	SensorApi  SensorApi  `yaml:"sensor-api"`
	Validation Validation `yaml:"validation"`
	Auth       Auth       `yaml:"auth"`
}

// SensorApi describes how to reach the third-party sensor management API.
type SensorApi struct {
	URL     string        `yaml:"url"`
	AuthKey string        `yaml:"auth-key"`
	OAuth2  *OAuth2       `yaml:"oauth2,omitempty"`
	Timeout time.Duration `yaml:"timeout"`

	// Sensor lookups are cached only when CacheTTL > 0
	CacheTTL     time.Duration `yaml:"cache-ttl"`
	CacheMaxKeys int           `yaml:"cache-max-keys"`
}

type OAuth2 struct {
	ClientID     string   `yaml:"client-id"`
	ClientSecret string   `yaml:"client-secret"`
	TokenURL     string   `yaml:"token-url"`
	Scopes       []string `yaml:"scopes"`
}

type Validation struct {
	MinimumFirmware       string `yaml:"minimum-firmware"`
	AcceptedConfiguration string `yaml:"accepted-configuration"`
	Concurrency           int    `yaml:"concurrency"`
}

type Auth struct {
	Type string `yaml:"type"`
	// Tokens are scrypt hashes as printed by `sensor-validator hash-token`
	Tokens []string `yaml:"tokens,omitempty"`
	Jwt    Jwt      `yaml:"jwt,omitempty"`
}

type Jwt struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

func Default() Config {
	return Config{
		Port: 8080,
		SensorApi: SensorApi{
			Timeout:      10 * time.Second,
			CacheMaxKeys: 10000,
		},
		Validation: Validation{
			MinimumFirmware:       DefaultMinimumFirmware,
			AcceptedConfiguration: DefaultAcceptedConfiguration,
			Concurrency:           1,
		},
		Auth: Auth{Type: AuthTypeNone},
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found at %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.SensorApi.URL == "" {
		return errors.New("sensor-api.url is required")
	} else if u, err := url.Parse(c.SensorApi.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("sensor-api.url is not a valid URL: %s", c.SensorApi.URL)
	}
	if c.SensorApi.OAuth2 == nil && c.SensorApi.AuthKey == "" {
		return errors.New("either sensor-api.auth-key or sensor-api.oauth2 must be configured")
	}
	if c.SensorApi.OAuth2 != nil && (c.SensorApi.OAuth2.ClientID == "" || c.SensorApi.OAuth2.TokenURL == "") {
		return errors.New("sensor-api.oauth2 requires client-id and token-url")
	}
	if c.Validation.AcceptedConfiguration == "" {
		return errors.New("validation.accepted-configuration must not be empty")
	}
	switch c.Auth.Type {
	case AuthTypeNone:
	case AuthTypeToken:
		if len(c.Auth.Tokens) == 0 {
			return errors.New("auth.tokens must list at least one token hash")
		}
	case AuthTypeJwt:
		if len(c.Auth.Jwt.Secret) < 32 {
			return errors.New("auth.jwt.secret must be at least 32 characters")
		}
	default:
		return fmt.Errorf("unsupported auth.type `%s`", c.Auth.Type)
	}
	return nil
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"fmt"
	"net/http"

	"github.com/foundriesio/sensor-validator/config"
)

type providerFunc func(cfg config.Auth) (AuthUserFunc, error)

var providers map[string]providerFunc

// NewAuthUserFunc returns the authentication function of the configured provider.
func NewAuthUserFunc(cfg config.Auth) (AuthUserFunc, error) {
	if provider, ok := providers[cfg.Type]; ok {
		authFunc, err := provider(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to configure provider `%s`: %w", cfg.Type, err)
		}
		return authFunc, nil
	}
	return nil, fmt.Errorf("no provider found with configured type `%s`", cfg.Type)
}

func registerProvider(name string, provider providerFunc) {
	if providers == nil {
		providers = make(map[string]providerFunc)
	}
	providers[name] = provider
}

func init() {
	registerProvider(config.AuthTypeNone, func(config.Auth) (AuthUserFunc, error) {
		user := scopedUser{id: "anonymous", scopes: allScopes}
		return func(http.ResponseWriter, *http.Request) (User, error) {
			return user, nil
		}, nil
	})
}

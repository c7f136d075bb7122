// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package gateway

import (
	"log/slog"
	"net/http"
	"strings"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/foundriesio/sensor-validator/config"
	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/sensor"
)

// AuthHeader carries the sensor management API key on every request.
const AuthHeader = "x-auth-id"

// Api is a client of the sensor management API. It implements both
// sensor.SensorLookup and sensor.TaskScheduler.
type Api struct {
	URL    string
	Client *http.Client

	// ConfigurationFilename is pushed to sensors by configuration update tasks
	ConfigurationFilename string

	cache cache.Cache[sensor.ID, sensor.State]
}

var (
	_ sensor.SensorLookup  = (*Api)(nil)
	_ sensor.TaskScheduler = (*Api)(nil)
)

// NewClient creates an API client. The ctx is only used by the OAuth2 token source.
func NewClient(ctx context.Context, cfg config.SensorApi, configurationFilename string) *Api {
	var client *http.Client
	if cfg.OAuth2 != nil {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuth2.ClientID,
			ClientSecret: cfg.OAuth2.ClientSecret,
			TokenURL:     cfg.OAuth2.TokenURL,
			Scopes:       cfg.OAuth2.Scopes,
		}
		client = cc.Client(ctx)
	} else {
		client = &http.Client{
			Transport: &authTransport{
				Key:       cfg.AuthKey,
				Transport: http.DefaultTransport,
			},
		}
	}
	client.Timeout = cfg.Timeout

	a := &Api{
		URL:                   strings.TrimSuffix(cfg.URL, "/"),
		Client:                client,
		ConfigurationFilename: configurationFilename,
	}
	if cfg.CacheTTL > 0 {
		a.cache = cache.NewCache[sensor.ID, sensor.State]().WithTTL(cfg.CacheTTL).WithMaxKeys(cfg.CacheMaxKeys)
	}
	return a
}

// DeleteExpired drops expired sensor lookups from the cache.
// It returns the number of entries still cached.
func (a *Api) DeleteExpired() int {
	if a.cache == nil {
		return 0
	}
	a.cache.DeleteExpired()
	return a.cache.Len()
}

type authTransport struct {
	Key       string
	Transport http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface in a way which adds
// the API key header to each request.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBodyClosed := false
	if req.Body != nil {
		defer func() {
			if !reqBodyClosed {
				if err := req.Body.Close(); err != nil {
					slog.Error("failed to close request body", "error", err)
				}
			}
		}()
	}

	req2 := req.Clone(req.Context())
	req2.Header.Set(AuthHeader, t.Key)

	// req.Body is assumed to be closed by the base RoundTripper.
	reqBodyClosed = true
	return t.Transport.RoundTrip(req2)
}

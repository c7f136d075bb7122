// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/foundriesio/sensor-validator/config"
)

// Deriving a scrypt key takes tens of milliseconds, so verified tokens are
// remembered for a while by their sha256 digest.
const verifiedTokenTTL = 5 * time.Minute

type tokenProvider struct {
	hashes   []string
	verified cache.Cache[[sha256.Size]byte, int]
}

func newTokenProvider(cfg config.Auth) (AuthUserFunc, error) {
	if len(cfg.Tokens) == 0 {
		return nil, errors.New("no token hashes configured")
	}
	for i, h := range cfg.Tokens {
		// Verifying against a garbage token surfaces malformed hashes at startup
		if _, err := TokenVerify("", h); err != nil {
			return nil, fmt.Errorf("token hash #%d: %w", i+1, err)
		}
	}
	p := tokenProvider{
		hashes:   cfg.Tokens,
		verified: cache.NewCache[[sha256.Size]byte, int]().WithTTL(verifiedTokenTTL).WithMaxKeys(1024),
	}
	return p.authenticate, nil
}

func (p tokenProvider) authenticate(w http.ResponseWriter, r *http.Request) (User, error) {
	token, ok := bearerToken(r)
	if !ok {
		return unauthorized(w, "Missing bearer token")
	}
	digest := sha256.Sum256([]byte(token))
	idx, ok := p.verified.Get(digest)
	if !ok {
		idx = p.lookup(token)
		if idx < 0 {
			return unauthorized(w, "Invalid API token")
		}
		p.verified.Set(digest, idx, 0)
	}
	return scopedUser{id: fmt.Sprintf("token-%d", idx+1), scopes: allScopes}, nil
}

func (p tokenProvider) lookup(token string) int {
	for i, h := range p.hashes {
		if ok, err := TokenVerify(token, h); err != nil {
			slog.Error("unable to verify API token", "hash", i+1, "error", err)
		} else if ok {
			return i
		}
	}
	return -1
}

func init() {
	registerProvider(config.AuthTypeToken, newTokenProvider)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"

	"github.com/foundriesio/sensor-validator/config"
)

type jwtProvider struct {
	secret []byte
	issuer string
}

type jwtScopes struct {
	Scope string `json:"scope"`
}

func newJwtProvider(cfg config.Auth) (AuthUserFunc, error) {
	if len(cfg.Jwt.Secret) < 32 {
		return nil, errors.New("jwt secret must be at least 32 characters")
	}
	p := jwtProvider{secret: []byte(cfg.Jwt.Secret), issuer: cfg.Jwt.Issuer}
	return p.authenticate, nil
}

func (p jwtProvider) authenticate(w http.ResponseWriter, r *http.Request) (User, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return unauthorized(w, "Missing bearer token")
	}
	user, err := p.parse(raw, time.Now())
	if err != nil {
		return unauthorized(w, fmt.Sprintf("Invalid bearer token: %s", err))
	}
	return user, nil
}

func (p jwtProvider) parse(raw string, now time.Time) (User, error) {
	tok, err := jwt.ParseSigned(raw)
	if err != nil {
		return nil, err
	}
	if len(tok.Headers) != 1 || tok.Headers[0].Algorithm != string(jose.HS256) {
		return nil, errors.New("only HS256 signed tokens are accepted")
	}
	var claims jwt.Claims
	var extra jwtScopes
	if err := tok.Claims(p.secret, &claims, &extra); err != nil {
		return nil, err
	}
	if claims.Expiry == nil {
		return nil, errors.New("token has no expiry")
	}
	if err := claims.ValidateWithLeeway(jwt.Expected{Issuer: p.issuer, Time: now}, jwt.DefaultLeeway); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return scopedUser{id: claims.Subject, scopes: strings.Fields(extra.Scope)}, nil
}

func init() {
	registerProvider(config.AuthTypeJwt, newJwtProvider)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"

	"github.com/foundriesio/sensor-validator/config"
)

func authenticate(t *testing.T, fn AuthUserFunc, authHeader string) (User, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/sensors/validate", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	user, err := fn(rec, req)
	require.Nil(t, err)
	return user, rec
}

func TestUnknownProvider(t *testing.T) {
	_, err := NewAuthUserFunc(config.Auth{Type: "ldap"})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no provider found")
}

func TestNoAuthProvider(t *testing.T) {
	fn, err := NewAuthUserFunc(config.Auth{Type: config.AuthTypeNone})
	require.Nil(t, err)
	user, _ := authenticate(t, fn, "")
	require.NotNil(t, user)
	require.Nil(t, user.HasScope(ScopeSensorsValidate))
}

func TestTokenProvider(t *testing.T) {
	_, err := NewAuthUserFunc(config.Auth{Type: config.AuthTypeToken})
	require.NotNil(t, err)
	_, err = NewAuthUserFunc(config.Auth{Type: config.AuthTypeToken, Tokens: []string{"garbage"}})
	require.NotNil(t, err)

	hash1, err := TokenHash("first-token")
	require.Nil(t, err)
	hash2, err := TokenHash("second-token")
	require.Nil(t, err)
	fn, err := NewAuthUserFunc(config.Auth{Type: config.AuthTypeToken, Tokens: []string{hash1, hash2}})
	require.Nil(t, err)

	user, rec := authenticate(t, fn, "")
	require.Nil(t, user)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	user, rec = authenticate(t, fn, "Bearer nope")
	require.Nil(t, user)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	user, _ = authenticate(t, fn, "Bearer second-token")
	require.NotNil(t, user)
	require.Equal(t, "token-2", user.Id())
	require.Nil(t, user.HasScope(ScopeSensorsValidate))

	// Served from the verified token cache
	user, _ = authenticate(t, fn, "Bearer second-token")
	require.Equal(t, "token-2", user.Id())
}

func signJwt(t *testing.T, secret string, alg jose.SignatureAlgorithm, claims jwt.Claims, scope string) string {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: alg, Key: []byte(secret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	require.Nil(t, err)
	raw, err := jwt.Signed(signer).Claims(claims).Claims(jwtScopes{Scope: scope}).CompactSerialize()
	require.Nil(t, err)
	return raw
}

func TestJwtProvider(t *testing.T) {
	secret := strings.Repeat("k", 64)
	_, err := NewAuthUserFunc(config.Auth{Type: config.AuthTypeJwt, Jwt: config.Jwt{Secret: "short"}})
	require.NotNil(t, err)

	fn, err := NewAuthUserFunc(config.Auth{Type: config.AuthTypeJwt, Jwt: config.Jwt{Secret: secret, Issuer: "ci"}})
	require.Nil(t, err)

	now := time.Now()
	valid := jwt.Claims{
		Subject:  "pipeline",
		Issuer:   "ci",
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(time.Hour)),
	}

	user, _ := authenticate(t, fn, "Bearer "+signJwt(t, secret, jose.HS256, valid, "sensors:validate"))
	require.NotNil(t, user)
	require.Equal(t, "pipeline", user.Id())
	require.Nil(t, user.HasScope(ScopeSensorsValidate))

	user, _ = authenticate(t, fn, "Bearer "+signJwt(t, secret, jose.HS256, valid, "sensors:read"))
	require.NotNil(t, user)
	require.NotNil(t, user.HasScope(ScopeSensorsValidate))

	expired := valid
	expired.Expiry = jwt.NewNumericDate(now.Add(-time.Hour))
	noExpiry := valid
	noExpiry.Expiry = nil
	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"
	noSubject := valid
	noSubject.Subject = ""

	for name, raw := range map[string]string{
		"expired":      signJwt(t, secret, jose.HS256, expired, "sensors:validate"),
		"no expiry":    signJwt(t, secret, jose.HS256, noExpiry, "sensors:validate"),
		"issuer":       signJwt(t, secret, jose.HS256, otherIssuer, "sensors:validate"),
		"no subject":   signJwt(t, secret, jose.HS256, noSubject, "sensors:validate"),
		"wrong secret": signJwt(t, strings.Repeat("x", 64), jose.HS256, valid, "sensors:validate"),
		"wrong alg":    signJwt(t, secret, jose.HS512, valid, "sensors:validate"),
		"garbage":      "not.a.jwt",
	} {
		user, rec := authenticate(t, fn, "Bearer "+raw)
		require.Nil(t, user, name)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestFakeAuthUser(t *testing.T) {
	user, _ := authenticate(t, FakeAuthUser, "")
	require.Equal(t, FakeOperatorId, user.Id())
	require.Nil(t, user.HasScope(ScopeSensorsValidate))

	req := httptest.NewRequest(http.MethodGet, "/?scope=sensors:admin", nil)
	user, err := FakeAuthUser(httptest.NewRecorder(), req)
	require.Nil(t, err)
	require.Nil(t, user.HasScope(ScopeSensorsValidate))
	require.NotNil(t, user.HasScope(Scope{"sensors:validate"}))

	req = httptest.NewRequest(http.MethodGet, "/?deny-has-scope=1", nil)
	user, err = FakeAuthUser(httptest.NewRecorder(), req)
	require.Nil(t, err)
	require.ErrorContains(t, user.HasScope(ScopeSensorsValidate), "fake-operator requires one of the scopes")
}

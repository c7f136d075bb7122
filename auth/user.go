// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Scope helps simplify how we check for role-based access. A user has a Scope
// when it was granted *any* of its entries.
type Scope []string

var (
	ScopeSensorsValidate = Scope{"sensors:validate", "sensors:admin"}

	allScopes = []string{"sensors:validate", "sensors:admin"}
)

type User interface {
	Id() string
	HasScope(Scope) error
}

// AuthUserFunc allows us to define a generic way for middleware to do
// authentication and authorization based on the incoming http request.
// The function returns nil if the user wasn't authenticated implying
// this function returned the proper error to the caller.
type AuthUserFunc func(w http.ResponseWriter, r *http.Request) (User, error)

type scopedUser struct {
	id     string
	scopes []string
}

func (u scopedUser) Id() string {
	return u.id
}

func (u scopedUser) HasScope(scope Scope) error {
	for _, s := range scope {
		if slices.Contains(u.scopes, s) {
			return nil
		}
	}
	return fmt.Errorf("user %s requires one of the scopes: %s", u.id, strings.Join(scope, ", "))
}

func unauthorized(w http.ResponseWriter, msg string) (User, error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="sensor-validator"`)
	http.Error(w, msg, http.StatusUnauthorized)
	return nil, nil
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"net/http"
)

const FakeOperatorId = "fake-operator"

// FakeAuthUser authenticates every request as an operator holding all sensor
// scopes. The `deny-has-scope` query parameter strips every scope, and
// `scope` narrows the grant to a single one.
func FakeAuthUser(w http.ResponseWriter, r *http.Request) (User, error) {
	q := r.URL.Query()
	scopes := allScopes
	if len(q.Get("deny-has-scope")) > 0 {
		scopes = nil
	} else if s := q.Get("scope"); len(s) > 0 {
		scopes = []string{s}
	}
	return scopedUser{id: FakeOperatorId, scopes: scopes}, nil
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"testing"
)

func TestTokenHashAndVerify(t *testing.T) {
	token := "correct-horse-battery-staple"

	hashed, err := TokenHash(token)
	if err != nil {
		t.Fatalf("TokenHash returned error: %v", err)
	}

	ok, err := TokenVerify(token, hashed)
	if err != nil {
		t.Fatalf("TokenVerify returned error: %v", err)
	}
	if !ok {
		t.Error("TokenVerify should return true for the correct token")
	}

	ok, err = TokenVerify("wrong-token", hashed)
	if err != nil {
		t.Fatalf("TokenVerify returned error: %v", err)
	}
	if ok {
		t.Error("TokenVerify should return false for an incorrect token")
	}
}

func TestTokenHashUniqueSalts(t *testing.T) {
	token := "same-token"

	hash1, err := TokenHash(token)
	if err != nil {
		t.Fatalf("TokenHash returned error: %v", err)
	}
	hash2, err := TokenHash(token)
	if err != nil {
		t.Fatalf("TokenHash returned error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("Two hashes of the same token should differ due to random salts")
	}
}

func TestTokenVerifyInvalidStoredHash(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"too short", "0abcde"},
		{"salt only", "0abcdefghij"},
		{"wrong version", "1abcdefghij" + "aa"},
		{"invalid hex", "0abcdefghij" + "zzzz"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TokenVerify("token", tc.stored)
			if err == nil {
				t.Error("TokenVerify should return an error for invalid stored hash")
			}
		})
	}
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	hashVersion = '0'
	saltLen     = 10
)

// TokenHash returns the storable form of an API token: <version><salt><scrypt key in hex>.
func TokenHash(token string) (string, error) {
	salt := rand.Text()[:saltLen]
	dk, err := deriveKey(token, salt)
	if err != nil {
		return "", err
	}
	return string(hashVersion) + salt + hex.EncodeToString(dk), nil
}

func TokenVerify(token, storedHash string) (bool, error) {
	if len(storedHash) <= saltLen+1 {
		return false, fmt.Errorf("invalid stored token hash length: %d", len(storedHash))
	}
	if storedHash[0] != hashVersion {
		return false, fmt.Errorf("unsupported token hash version: %c", storedHash[0])
	}
	salt := storedHash[1 : saltLen+1]
	expected, err := hex.DecodeString(storedHash[saltLen+1:])
	if err != nil {
		return false, fmt.Errorf("unexpected error decoding token hash: %w", err)
	}
	dk, err := deriveKey(token, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(dk, expected) == 1, nil
}

func deriveKey(token, salt string) ([]byte, error) {
	dk, err := scrypt.Key([]byte(token), []byte(salt), 32768, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("unexpected error deriving key from token: %w", err)
	}
	return dk, nil
}

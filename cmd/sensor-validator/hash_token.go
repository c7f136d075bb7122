// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/foundriesio/sensor-validator/auth"
)

type HashTokenCmd struct {
	out io.Writer

	Token string `arg:"positional,required" help:"The API token clients will send as a bearer token"`
}

func (c HashTokenCmd) Run(args CommonArgs) error {
	if len(c.Token) < 16 {
		return errors.New("tokens must be at least 16 characters")
	}
	hash, err := auth.TokenHash(c.Token)
	if err != nil {
		return fmt.Errorf("failed to hash token: %w", err)
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

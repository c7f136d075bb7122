// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package login

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundriesio/sensor-validator/cli/config"
)

func TestLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensorctl.yaml")

	require.NotNil(t, login("prod", "not a url", "", path, true))

	require.Nil(t, login("prod", "https://validator.example.com", "secret", path, true))
	require.Nil(t, login("local", "http://localhost:8080", "", path, false))

	cfg, err := config.LoadConfig(path)
	require.Nil(t, err)
	require.Equal(t, "prod", cfg.ActiveContext)
	require.Len(t, cfg.Contexts, 2)
	require.Equal(t, config.Context{URL: "http://localhost:8080"}, cfg.Contexts["local"])
}

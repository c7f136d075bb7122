// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("59.1.12Rev4")
	require.Nil(t, err)
	require.Equal(t, Version{59, 1, 12, 4}, v)
	require.Equal(t, "59.1.12Rev4", v.String())

	for _, bad := range []string{
		"", "59.1.12", "59.1.12rev4", "59.1.12Rev", "v59.1.12Rev4", "59.1.12Rev4 ", "a.b.cRevd",
		"99999999999999999999.1.1Rev1",
	} {
		_, err := ParseVersion(bad)
		require.ErrorIs(t, err, ErrInvalidVersion, bad)
	}
}

func TestFirmwareIsUpToDate(t *testing.T) {
	f, err := NewFirmwareVerifier(DefaultMinimumFirmware)
	require.Nil(t, err)

	tests := map[string]bool{
		"59.1.12Rev4":  true,
		"59.1.12Rev5":  true,
		"59.1.13Rev0":  true,
		"59.2.0Rev0":   true,
		"60.1.12Rev1":  true,
		"59.1.12Rev3":  false,
		"59.1.11Rev9":  false,
		"59.0.99Rev99": false,
		"50.1.12Rev1":  false,
		"":             false,
		"garbage":      false,
	}
	for version, expected := range tests {
		require.Equal(t, expected, f.IsUpToDate(version), version)
	}

	_, err = NewFirmwareVerifier("latest")
	require.NotNil(t, err)
}

func TestConfigurationIsValid(t *testing.T) {
	c := ConfigurationVerifier{Accepted: DefaultConfiguration}
	require.True(t, c.IsValid("config123.cfg"))
	require.False(t, c.IsValid(""))
	require.False(t, c.IsValid("CONFIG123.cfg"))
	require.False(t, c.IsValid("config123.cfg.bak"))
	require.False(t, c.IsValid("config123"))

	require.False(t, ConfigurationVerifier{}.IsValid(""))
}

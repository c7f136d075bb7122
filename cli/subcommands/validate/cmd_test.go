// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundriesio/sensor-validator/cli/api"
	"github.com/foundriesio/sensor-validator/cli/config"
)

func newApi(t *testing.T) *api.Api {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "status": "ready"}, {"id": 22, "status": "updating_firmware"}]`))
	}))
	t.Cleanup(ts.Close)
	return api.NewClient(config.Context{URL: ts.URL})
}

func TestValidateTable(t *testing.T) {
	a := newApi(t)
	path := filepath.Join(t.TempDir(), "fleet.csv")
	require.Nil(t, os.WriteFile(path, []byte("id\n1\n22\n"), 0o644))

	out := &bytes.Buffer{}
	require.Nil(t, validate(a, path, nil, out, false, false))
	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "ID  STATUS", lines[0])
	require.Equal(t, "1   ready", lines[1])
	require.Equal(t, "22  updating_firmware", lines[2])
	require.Contains(t, out.String(), "2 sensors: 1 ready, 1 updating firmware")

	err := validate(a, path, nil, &bytes.Buffer{}, false, true)
	require.ErrorContains(t, err, "1 of 2 sensors are not ready")

	require.NotNil(t, validate(a, path+".missing", nil, out, false, false))
}

func TestValidateJsonFromStdin(t *testing.T) {
	a := newApi(t)
	out := &bytes.Buffer{}
	require.Nil(t, validate(a, "-", strings.NewReader("id\n1\n22\n"), out, true, false))
	require.JSONEq(t, `[{"id": 1, "status": "ready"}, {"id": 22, "status": "updating_firmware"}]`, out.String())
}

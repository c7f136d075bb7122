// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/foundriesio/sensor-validator/auth"
	"github.com/foundriesio/sensor-validator/context"
)

func TestMiddlewareTagsLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))

	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		CtxGetLog(c.Request().Context()).Info("handled")
		return c.NoContent(http.StatusNoContent)
	}, authUser(auth.FakeAuthUser), requireScope(auth.ScopeSensorsValidate))

	serve := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = req.WithContext(CtxWithLog(context.Background(), log))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := serve("/guarded")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, buf.String(), "user="+auth.FakeOperatorId)
	require.Contains(t, buf.String(), "scope=sensors:validate")

	buf.Reset()
	rec = serve("/guarded?scope=sensors:admin")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, buf.String(), "scope=sensors:validate")

	buf.Reset()
	rec = serve("/guarded?deny-has-scope=1")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "requires one of the scopes")
	require.NotContains(t, buf.String(), "handled")
}

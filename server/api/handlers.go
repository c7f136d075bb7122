// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/auth"
	"github.com/foundriesio/sensor-validator/sensor"
)

type handlers struct {
	engine *sensor.Engine
}

func RegisterHandlers(e *echo.Echo, engine *sensor.Engine, authFunc auth.AuthUserFunc) {
	h := handlers{engine: engine}

	e.GET("/healthz", h.healthz)

	g := e.Group("/api", authUser(authFunc))
	g.POST("/sensors/validate", h.sensorsValidate, requireScope(auth.ScopeSensorsValidate))
}

func (h *handlers) healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package simulator

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/gateway"
	"github.com/foundriesio/sensor-validator/server"
)

func requireAuthKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(gateway.AuthHeader)
			if got == "" {
				return server.EchoError(c, nil, http.StatusUnauthorized, "Missing "+gateway.AuthHeader+" header")
			}
			if key != "" && subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return server.EchoError(c, nil, http.StatusUnauthorized, "Invalid "+gateway.AuthHeader+" header")
			}
			return next(c)
		}
	}
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package server

import (
	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/context"
)

// EchoError logs err with the request's logger and sends msg to the caller.
// The returned error is only non-nil when the response could not be written.
func EchoError(c echo.Context, err error, status int, msg string) error {
	log := context.CtxGetLog(c.Request().Context())
	if err != nil {
		log.Error(msg, "error", err, "status", status)
	} else {
		log.Warn(msg, "status", status)
	}
	return c.String(status, msg)
}

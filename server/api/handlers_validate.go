// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/idfile"
	"github.com/foundriesio/sensor-validator/sensor"
	"github.com/foundriesio/sensor-validator/server"
)

const UploadField = "file"

type ValidationResult struct {
	Id     sensor.ID     `json:"id"`
	Status sensor.Status `json:"status"`
}

// @Summary Validate the sensors listed in an uploaded CSV file
// @Accept  multipart/form-data
// @Produce json
// @Success 200 []ValidationResult
// @Router  /api/sensors/validate [post]
func (h *handlers) sensorsValidate(c echo.Context) error {
	fh, err := c.FormFile(UploadField)
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to read the uploaded file")
	}
	if fh == nil || fh.Size == 0 {
		return server.EchoError(c, nil, http.StatusBadRequest, "Please upload a non-empty CSV file")
	}

	file, err := fh.Open()
	if err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to read the uploaded file")
	}
	defer func() { _ = file.Close() }()

	ctx := c.Request().Context()
	ids, err := idfile.Parse(ctx, file)
	if err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to read the uploaded file")
	}

	sensors := h.engine.Validate(ctx, ids)
	results := make([]ValidationResult, len(sensors))
	for i, s := range sensors {
		results[i] = ValidationResult{Id: s.ID, Status: s.Status}
	}
	CtxGetLog(ctx).Info("validated sensors", "count", len(results))
	return c.JSON(http.StatusOK, results)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	models "github.com/foundriesio/sensor-validator/server/api"
)

type ValidationResult = models.ValidationResult

// Validate uploads a CSV file of sensor ids and returns the status of each sensor.
func (a *Api) Validate(filename string, content io.Reader) ([]ValidationResult, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(models.UploadField, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var results []ValidationResult
	return results, a.Post("/api/sensors/validate", w.FormDataContentType(), body, &results)
}

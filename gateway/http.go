// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/foundriesio/sensor-validator/context"
)

// HttpError is returned when the API answers with a non-2xx status.
type HttpError struct {
	Method     string
	Url        string
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Url, e.StatusCode, e.Body)
}

func (a Api) do(ctx context.Context, method, resource string, body, result any) error {
	url := a.URL + resource
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("unable to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			context.CtxGetLog(ctx).Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		buf, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if err != nil {
			buf = []byte("<unreadable body>")
		}
		return &HttpError{Method: method, Url: url, StatusCode: resp.StatusCode, Body: string(buf)}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("unable to decode %s %s response: %w", method, url, err)
	}
	return nil
}

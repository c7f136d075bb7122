// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (a Api) Get(resource string, result any) error {
	req, err := http.NewRequest(http.MethodGet, a.URL+resource, nil)
	if err != nil {
		return err
	}
	return a.do(req, result)
}

func (a Api) Post(resource, contentType string, body io.Reader, result any) error {
	req, err := http.NewRequest(http.MethodPost, a.URL+resource, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return a.do(req, result)
}

func (a Api) do(req *http.Request, result any) error {
	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			fmt.Printf("warning: failed to close response body: %v\n", err)
		}
	}()

	if resp.StatusCode != 200 {
		buf, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("API request failed with status %d and unreadable body", resp.StatusCode)
		}
		rid := resp.Header.Get("X-Request-ID")
		return fmt.Errorf("API request (id=%s) failed with status %d: %s", rid, resp.StatusCode, string(buf))
	}

	if result == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package gateway

import (
	"errors"
	"net/http"

	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/sensor"
)

// SensorInformation is the subset of the management API sensor resource we use.
type SensorInformation struct {
	Serial               int64   `json:"serial"`
	CurrentFirmware      *string `json:"current_firmware"`
	CurrentConfiguration *string `json:"current_configuration"`
}

func (i SensorInformation) State() sensor.State {
	return sensor.State{
		FirmwareVersion: nonEmpty(i.CurrentFirmware),
		Configuration:   nonEmpty(i.CurrentConfiguration),
	}
}

// Lookup returns the sensor's reported state. Any failure is logged and yields
// an empty state, which the validation engine classifies as firmware_unknown.
func (a *Api) Lookup(ctx context.Context, id sensor.ID) sensor.State {
	log := context.CtxGetLog(ctx).With("sensor", id)
	if a.cache != nil {
		if state, ok := a.cache.Get(id); ok {
			log.Debug("sensor information served from cache")
			return state
		}
	}

	var info SensorInformation
	if err := a.do(ctx, http.MethodGet, "/sensors/"+id.String(), nil, &info); err != nil {
		var httpErr *HttpError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			log.Warn("sensor not found in sensor API")
		} else {
			log.Error("unable to retrieve sensor information", "error", err)
		}
		return sensor.State{}
	}

	state := info.State()
	if a.cache != nil {
		a.cache.Set(id, state, 0)
	}
	return state
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

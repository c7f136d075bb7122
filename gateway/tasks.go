// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/sensor"
)

const TasksResource = "/tasks"

var ErrTaskIdMissing = errors.New("task response has no id")

type taskResponse struct {
	Id json.RawMessage `json:"id"`
}

func (a *Api) ScheduleFirmwareUpdate(ctx context.Context, id sensor.ID) (string, error) {
	return a.schedule(ctx, sensor.NewFirmwareUpdateTask(id))
}

func (a *Api) ScheduleConfigurationUpdate(ctx context.Context, id sensor.ID) (string, error) {
	return a.schedule(ctx, sensor.NewConfigurationUpdateTask(id, a.ConfigurationFilename))
}

func (a *Api) schedule(ctx context.Context, task sensor.Task) (string, error) {
	var resp taskResponse
	if err := a.do(ctx, http.MethodPut, TasksResource, task, &resp); err != nil {
		return "", fmt.Errorf("unable to schedule %s task: %w", task.Type, err)
	}
	taskId, err := resp.taskId()
	if err != nil {
		return "", fmt.Errorf("unable to schedule %s task: %w", task.Type, err)
	}
	return taskId, nil
}

// The API has returned both numeric and string task ids.
func (r taskResponse) taskId() (string, error) {
	if len(r.Id) == 0 || string(r.Id) == "null" {
		return "", ErrTaskIdMissing
	}
	var id string
	if err := json.Unmarshal(r.Id, &id); err == nil {
		if id == "" {
			return "", ErrTaskIdMissing
		}
		return id, nil
	}
	var num json.Number
	if err := json.Unmarshal(r.Id, &num); err != nil {
		return "", fmt.Errorf("%w: unexpected id %s", ErrTaskIdMissing, string(r.Id))
	}
	return num.String(), nil
}

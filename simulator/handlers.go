// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package simulator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/sensor"
	"github.com/foundriesio/sensor-validator/server"
	storage "github.com/foundriesio/sensor-validator/storage/simulator"
)

type handlers struct {
	storage   *storage.Storage
	failTasks bool
}

type (
	SensorInformation = storage.SensorInformation
	Task              = storage.Task
)

type TaskCreated struct {
	Id string `json:"id"`
}

func sensorId(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Sensor id must be a number")
	}
	return id, nil
}

// @Summary Get the current state of a sensor
// @Produce json
// @Success 200 SensorInformation
// @Router  /api/sensors/:id [get]
func (h *handlers) sensorGet(c echo.Context) error {
	id, err := sensorId(c)
	if err != nil {
		return err
	}
	info, err := h.storage.SensorGet(id)
	if err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to lookup sensor")
	} else if info == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return c.JSON(http.StatusOK, info)
}

// @Summary Create or replace the state of a sensor
// @Accept  json
// @Produce json
// @Success 200 SensorInformation
// @Router  /api/sensors/:id [put]
func (h *handlers) sensorPut(c echo.Context) error {
	id, err := sensorId(c)
	if err != nil {
		return err
	}
	var info SensorInformation
	if err := c.Bind(&info); err != nil {
		return server.EchoError(c, err, http.StatusBadRequest, "Could not parse request")
	}
	info.Serial = id
	if err := h.storage.SensorUpsert(info); err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to save sensor")
	}
	return c.JSON(http.StatusOK, info)
}

// @Summary List the tasks received so far, optionally for one sensor
// @Produce json
// @Success 200 []Task
// @Router  /api/tasks [get]
func (h *handlers) taskList(c echo.Context) error {
	var id int64
	if s := c.QueryParam("sensor"); s != "" {
		var err error
		if id, err = strconv.ParseInt(s, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Sensor id must be a number")
		}
	}
	tasks, err := h.storage.TaskList(id)
	if err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to list tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

// @Summary Schedule a remediation task for a sensor
// @Accept  json
// @Produce json
// @Success 200 TaskCreated
// @Router  /api/tasks [put]
func (h *handlers) taskCreate(c echo.Context) error {
	var req sensor.Task
	if err := c.Bind(&req); err != nil {
		return server.EchoError(c, err, http.StatusBadRequest, "Could not parse request")
	}
	switch req.Type {
	case sensor.TaskFirmwareUpdate:
		if req.ConfigurationFilename != "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Firmware updates take no configuration filename")
		}
	case sensor.TaskConfigurationUpdate:
		if req.ConfigurationFilename == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Configuration updates require a configuration filename")
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported task type: "+string(req.Type))
	}
	if h.failTasks {
		return server.EchoError(c, errors.New("task submissions are configured to fail"),
			http.StatusInternalServerError, "Unable to schedule task")
	}

	task := Task{Id: uuid.New().String(), SensorId: int64(req.ID), Type: string(req.Type)}
	if req.ConfigurationFilename != "" {
		task.ConfigurationFilename = &req.ConfigurationFilename
	}
	task, err := h.storage.TaskCreate(task)
	if err != nil {
		return server.EchoError(c, err, http.StatusInternalServerError, "Failed to save task")
	}
	context.CtxGetLog(c.Request().Context()).Info("task scheduled", "task", task.Id, "sensor", task.SensorId, "type", task.Type)
	return c.JSON(http.StatusOK, TaskCreated{Id: task.Id})
}

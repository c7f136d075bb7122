// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import "strconv"

// ID is the management API serial of a sensor.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Status is the compliance classification assigned to a sensor by one validation run.
type Status string

const (
	StatusFirmwareUnknown       Status = "firmware_unknown"
	StatusUpdatingFirmware      Status = "updating_firmware"
	StatusUpdatingConfiguration Status = "updating_configuration"
	StatusReady                 Status = "ready"
	StatusUpdateFailed          Status = "update_failed"
)

// State is what the sensor information service reports for a sensor.
// A nil field means the value could not be determined.
type State struct {
	FirmwareVersion *string
	Configuration   *string
}

// Sensor is an immutable snapshot of a sensor during a validation run.
type Sensor struct {
	ID              ID      `json:"id"`
	FirmwareVersion *string `json:"firmware-version,omitempty"`
	Configuration   *string `json:"configuration,omitempty"`
	Status          Status  `json:"status"`
}

func New(id ID, state State) Sensor {
	return Sensor{ID: id, FirmwareVersion: state.FirmwareVersion, Configuration: state.Configuration}
}

// WithStatus returns a copy of the sensor with the status set.
func (s Sensor) WithStatus(status Status) Sensor {
	s.Status = status
	return s
}

func (s Sensor) HasFirmware() bool {
	return s.FirmwareVersion != nil
}

func (s Sensor) HasConfiguration() bool {
	return s.Configuration != nil
}

type TaskType string

const (
	TaskFirmwareUpdate      TaskType = "firmware_update"
	TaskConfigurationUpdate TaskType = "configuration_update"
)

// Task is a remediation request submitted to the task scheduling service.
type Task struct {
	ID                    ID       `json:"id"`
	Type                  TaskType `json:"type"`
	ConfigurationFilename string   `json:"configurationFilename,omitempty"`
}

func NewFirmwareUpdateTask(id ID) Task {
	return Task{ID: id, Type: TaskFirmwareUpdate}
}

func NewConfigurationUpdateTask(id ID, filename string) Task {
	return Task{ID: id, Type: TaskConfigurationUpdate, ConfigurationFilename: filename}
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package storage

// SensorInformation is what the sensor management API reports for a sensor.
type SensorInformation struct {
	Serial               int64   `json:"serial"`
	CurrentFirmware      *string `json:"current_firmware"`
	CurrentConfiguration *string `json:"current_configuration"`
}

// Task is a remediation task as received by the sensor management API.
type Task struct {
	Id                    string  `json:"id"`
	SensorId              int64   `json:"sensorId"`
	Type                  string  `json:"type"`
	ConfigurationFilename *string `json:"configurationFilename,omitempty"`
	CreatedAt             int64   `json:"createdAt"`
}

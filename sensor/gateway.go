// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import "context"

// SensorLookup can look up the current state of a sensor.
// Implementations never fail: a sensor that can't be found, or any transport
// error, yields a State with both fields absent.
type SensorLookup interface {
	Lookup(ctx context.Context, id ID) State
}

// TaskScheduler can submit remediation tasks for a sensor.
// A returned error means the task was not accepted; callers do not retry.
type TaskScheduler interface {
	ScheduleFirmwareUpdate(ctx context.Context, id ID) (taskId string, err error)
	ScheduleConfigurationUpdate(ctx context.Context, id ID) (taskId string, err error)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

func ptr(s string) *string {
	return &s
}

type fakeLookup map[ID]State

func (f fakeLookup) Lookup(_ context.Context, id ID) State {
	return f[id]
}

type scheduled struct {
	id       ID
	taskType TaskType
}

type fakeScheduler struct {
	mu    sync.Mutex
	calls []scheduled
	fail  map[ID]bool
}

func (f *fakeScheduler) ScheduleFirmwareUpdate(_ context.Context, id ID) (string, error) {
	return f.schedule(id, TaskFirmwareUpdate)
}

func (f *fakeScheduler) ScheduleConfigurationUpdate(_ context.Context, id ID) (string, error) {
	return f.schedule(id, TaskConfigurationUpdate)
}

func (f *fakeScheduler) schedule(id ID, taskType TaskType) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, scheduled{id, taskType})
	if f.fail[id] {
		return "", errors.New("500 Internal Server Error")
	}
	return fmt.Sprintf("task-%d", len(f.calls)), nil
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import (
	"golang.org/x/sync/errgroup"

	"github.com/foundriesio/sensor-validator/context"
)

type Option func(*Engine)

func WithFirmwareVerifier(v FirmwareVerifier) Option {
	return func(e *Engine) {
		e.firmware = v
	}
}

func WithConfigurationVerifier(v ConfigurationVerifier) Option {
	return func(e *Engine) {
		e.configuration = v
	}
}

// WithConcurrency sets how many sensors are evaluated at the same time.
// Values below 2 keep the evaluation strictly sequential.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// Engine decides the compliance status of sensors and schedules remediation tasks.
type Engine struct {
	lookup SensorLookup
	tasks  TaskScheduler

	firmware      FirmwareVerifier
	configuration ConfigurationVerifier
	concurrency   int
}

func NewEngine(lookup SensorLookup, tasks TaskScheduler, opts ...Option) *Engine {
	e := &Engine{
		lookup:        lookup,
		tasks:         tasks,
		firmware:      FirmwareVerifier{Minimum: MustParseVersion(DefaultMinimumFirmware)},
		configuration: ConfigurationVerifier{Accepted: DefaultConfiguration},
		concurrency:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate returns one sensor per id, in the same order as ids.
// Failures of individual sensors are folded into their status and never abort the batch.
func (e *Engine) Validate(ctx context.Context, ids []ID) []Sensor {
	results := make([]Sensor, len(ids))
	if e.concurrency < 2 {
		for i, id := range ids {
			results[i] = e.validate(ctx, id)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = e.validate(ctx, id)
			return nil
		})
	}
	_ = g.Wait() // validate never fails
	return results
}

func (e *Engine) validate(ctx context.Context, id ID) Sensor {
	log := context.CtxGetLog(ctx).With("sensor", id)
	s := New(id, e.lookup.Lookup(ctx, id))
	r := e.match(s)

	var taskId string
	var err error
	switch r.remedy {
	case remedyNone:
		log.Debug("sensor evaluated", "rule", r.name, "status", r.status)
		return s.WithStatus(r.status)
	case remedyFirmware:
		taskId, err = e.tasks.ScheduleFirmwareUpdate(ctx, id)
	case remedyConfiguration:
		taskId, err = e.tasks.ScheduleConfigurationUpdate(ctx, id)
	}
	if err != nil {
		log.Error("failed to schedule remediation task", "rule", r.name, "error", err)
		return s.WithStatus(StatusUpdateFailed)
	}
	log.Info("scheduled remediation task", "rule", r.name, "task", taskId)
	return s.WithStatus(r.status)
}

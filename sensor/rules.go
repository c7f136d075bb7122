// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

type remedy int

const (
	remedyNone remedy = iota
	remedyFirmware
	remedyConfiguration
)

type rule struct {
	name   string
	match  func(e *Engine, s Sensor) bool
	remedy remedy
	// status is assigned when the rule needs no remedy, or when its remedy was scheduled.
	status Status
}

// rules is the compliance priority policy. It is evaluated top-down and the first
// matching rule decides the outcome, so a sensor with outdated firmware never gets
// its configuration checked in the same run. The last rule always matches.
var rules = []rule{
	{
		name:   "firmware-unknown",
		match:  func(_ *Engine, s Sensor) bool { return !s.HasFirmware() },
		remedy: remedyNone,
		status: StatusFirmwareUnknown,
	},
	{
		name:   "firmware-outdated",
		match:  func(e *Engine, s Sensor) bool { return !e.firmware.IsUpToDate(*s.FirmwareVersion) },
		remedy: remedyFirmware,
		status: StatusUpdatingFirmware,
	},
	{
		name:   "configuration-missing",
		match:  func(_ *Engine, s Sensor) bool { return !s.HasConfiguration() },
		remedy: remedyConfiguration,
		status: StatusUpdatingConfiguration,
	},
	{
		name:   "configuration-invalid",
		match:  func(e *Engine, s Sensor) bool { return !e.configuration.IsValid(*s.Configuration) },
		remedy: remedyConfiguration,
		status: StatusUpdatingConfiguration,
	},
	{
		name:   "ready",
		match:  func(*Engine, Sensor) bool { return true },
		remedy: remedyNone,
		status: StatusReady,
	},
}

func (e *Engine) match(s Sensor) rule {
	for _, r := range rules {
		if r.match(e, s) {
			return r
		}
	}
	panic("programming error: the last compliance rule must always match")
}

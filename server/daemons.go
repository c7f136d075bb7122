// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package server

import (
	"time"
)

type DaemonFunc func(stop chan bool)

// Daemons runs background loops next to an HTTP server.
type Daemons struct {
	daemons []DaemonFunc
	stops   []chan bool
}

func NewDaemons(daemons ...DaemonFunc) *Daemons {
	return &Daemons{daemons: daemons}
}

func (d *Daemons) Start() {
	for _, f := range d.daemons {
		stop := make(chan bool)
		d.stops = append(d.stops, stop)
		go f(stop)
	}
}

func (d *Daemons) Shutdown() {
	for _, s := range d.stops {
		s <- true
	}
	d.stops = nil
}

// Every returns a daemon calling fn once per interval until stopped.
func Every(interval time.Duration, fn func()) DaemonFunc {
	return func(stop chan bool) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}
}

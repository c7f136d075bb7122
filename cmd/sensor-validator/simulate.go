// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"fmt"

	"github.com/foundriesio/sensor-validator/server"
	"github.com/foundriesio/sensor-validator/simulator"
	"github.com/foundriesio/sensor-validator/storage"
)

type SimulateCmd struct {
	startedCb func(srv server.Server)

	DataDir   string `arg:"--data-dir,required" help:"Directory to store the simulated fleet"`
	Port      uint16 `arg:"--port" default:"8086"`
	AuthKey   string `arg:"--auth-key,env:SIMULATOR_AUTH_KEY" help:"Expected x-auth-id header value; any value when empty"`
	FailTasks bool   `arg:"--fail-tasks" help:"Reject every task submission with a server error"`
}

func (c *SimulateCmd) Run(args CommonArgs) error {
	fs, err := storage.NewFs(c.DataDir)
	if err != nil {
		return fmt.Errorf("failed to load filesystem: %w", err)
	}
	db, err := storage.NewDb(fs.Config.DbFile())
	if err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer db.Close() // nolint:errcheck

	srv, err := simulator.NewServer(args.ctx, db, c.Port, simulator.Options{AuthKey: c.AuthKey, FailTasks: c.FailTasks})
	if err != nil {
		return err
	}
	return runServers(c.startedCb, srv)
}

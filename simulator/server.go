// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

// Package simulator plays the third-party sensor management API so the
// validator can be exercised without a real fleet.
package simulator

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/server"
	storage "github.com/foundriesio/sensor-validator/storage/simulator"
)

const (
	serverName = "simulator"

	// BasePath is where the simulated API is mounted, like the real one.
	BasePath = "/api"
)

type Options struct {
	// AuthKey is the expected x-auth-id header value. Any non-empty value is
	// accepted when it is unset.
	AuthKey string
	// FailTasks makes every task submission fail with a 500.
	FailTasks bool
}

func NewServer(ctx context.Context, db *storage.DbHandle, port uint16, opts Options) (server.Server, error) {
	strg, err := storage.NewStorage(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s storage: %w", serverName, err)
	}
	e := server.NewEchoServer()
	RegisterHandlers(e, strg, opts)
	return server.NewServer(ctx, e, serverName, port), nil
}

func RegisterHandlers(e *echo.Echo, strg *storage.Storage, opts Options) {
	h := handlers{storage: strg, failTasks: opts.FailTasks}

	g := e.Group(BasePath, requireAuthKey(opts.AuthKey))
	g.GET("/sensors/:id", h.sensorGet)
	g.PUT("/sensors/:id", h.sensorPut)
	g.GET("/tasks", h.taskList)
	g.PUT("/tasks", h.taskCreate)
}

// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package api

import (
	"fmt"
	"time"

	"github.com/foundriesio/sensor-validator/auth"
	"github.com/foundriesio/sensor-validator/config"
	"github.com/foundriesio/sensor-validator/gateway"
	"github.com/foundriesio/sensor-validator/sensor"
	"github.com/foundriesio/sensor-validator/server"
)

const (
	serverName = "rest-api"

	cachePurgeInterval = time.Minute
)

// NewEngine wires the validation engine to the sensor management API described by cfg.
func NewEngine(ctx Context, cfg *config.Config) (*sensor.Engine, *gateway.Api, error) {
	firmware, err := sensor.NewFirmwareVerifier(cfg.Validation.MinimumFirmware)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid validation.minimum-firmware: %w", err)
	}
	accepted := cfg.Validation.AcceptedConfiguration
	client := gateway.NewClient(ctx, cfg.SensorApi, accepted)
	engine := sensor.NewEngine(client, client,
		sensor.WithFirmwareVerifier(firmware),
		sensor.WithConfigurationVerifier(sensor.ConfigurationVerifier{Accepted: accepted}),
		sensor.WithConcurrency(cfg.Validation.Concurrency),
	)
	return engine, client, nil
}

func NewServer(ctx Context, cfg *config.Config) (server.Server, error) {
	authFunc, err := auth.NewAuthUserFunc(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s auth: %w", serverName, err)
	}
	engine, client, err := NewEngine(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s engine: %w", serverName, err)
	}

	e := server.NewEchoServer()
	srv := server.NewServer(ctx, e, serverName, cfg.Port)
	RegisterHandlers(e, engine, authFunc)

	var daemons []server.DaemonFunc
	if cfg.SensorApi.CacheTTL > 0 {
		log := CtxGetLog(ctx)
		daemons = append(daemons, server.Every(cachePurgeInterval, func() {
			log.Debug("purged sensor lookup cache", "cached", client.DeleteExpired())
		}))
	}
	return &apiServer{server: srv, daemons: server.NewDaemons(daemons...)}, nil
}

type apiServer struct {
	server  server.Server
	daemons *server.Daemons
}

func (s apiServer) Start(quit chan error) {
	s.daemons.Start()
	s.server.Start(quit)
}

func (s apiServer) Shutdown(timeout time.Duration) {
	s.daemons.Shutdown()
	s.server.Shutdown(timeout)
}

func (s apiServer) GetAddress() string {
	return s.server.GetAddress()
}

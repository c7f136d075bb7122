// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/foundriesio/sensor-validator/config"
	"github.com/foundriesio/sensor-validator/server"
	"github.com/foundriesio/sensor-validator/server/api"
)

type ServeCmd struct {
	startedCb func(srv server.Server)

	Config           string `arg:"-c,--config,env:SENSOR_VALIDATOR_CONFIG" help:"Path to the YAML configuration file"`
	Port             uint16 `arg:"--port" help:"Override the port from the configuration file"`
	SensorApiUrl     string `arg:"--sensor-api-url,env:SENSOR_API_URL" help:"Override sensor-api.url"`
	SensorApiAuthKey string `arg:"--sensor-api-auth-key,env:SENSOR_API_AUTH_KEY" help:"Override sensor-api.auth-key"`
}

func (c *ServeCmd) Run(args CommonArgs) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	apiServer, err := api.NewServer(args.ctx, cfg)
	if err != nil {
		return err
	}
	return runServers(c.startedCb, apiServer)
}

func (c *ServeCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	if c.SensorApiUrl != "" {
		cfg.SensorApi.URL = c.SensorApiUrl
	}
	if c.SensorApiAuthKey != "" {
		cfg.SensorApi.AuthKey = c.SensorApiAuthKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runServers starts the servers and blocks until one fails or the process is signalled.
func runServers(startedCb func(srv server.Server), servers ...server.Server) (err error) {
	quitErr := make(chan error, len(servers))
	for _, srv := range servers {
		srv.Start(quitErr)
	}

	if startedCb != nil {
		// Testing code, see serve_test.go
		time.Sleep(time.Millisecond * 2)
		startedCb(servers[0])
	}

	// setup channel to gracefully terminate server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err = <-quitErr:
	case <-quit:
		break
	}

	var wg sync.WaitGroup
	wg.Add(len(servers))
	for _, srv := range servers {
		go func() {
			srv.Shutdown(time.Minute)
			wg.Done()
		}()
	}
	wg.Wait()

	return err
}

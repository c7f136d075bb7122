// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/foundriesio/sensor-validator/context"
)

type CommonArgs struct {
	LogLevel string `arg:"--log-level" help:"One of debug, info, warning, error (default: $LOG_LEVEL or info)"`

	Serve     *ServeCmd     `arg:"subcommand:serve" help:"Run the sensor validation REST API"`
	Simulate  *SimulateCmd  `arg:"subcommand:simulate" help:"Run a local simulator of the sensor management API"`
	HashToken *HashTokenCmd `arg:"subcommand:hash-token" help:"Print the hash of an API token for the server config"`

	ctx context.Context
}

func main() {
	args := CommonArgs{}
	p := arg.MustParse(&args)

	log, err := context.InitLogger(args.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
		return
	}
	args.ctx = context.CtxWithLog(context.Background(), log)

	switch {
	case args.Serve != nil:
		err = args.Serve.Run(args)
	case args.Simulate != nil:
		err = args.Simulate.Run(args)
	case args.HashToken != nil:
		err = args.HashToken.Run(args)
	default:
		p.Fail("missing required subcommand")
	}
	if err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

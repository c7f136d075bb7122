// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package context

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var levelMap = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// InitLogger creates the JSON logger used by all sensor-validator commands.
// An empty level falls back to $LOG_LEVEL, then to "info".
func InitLogger(level string) (*slog.Logger, error) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
		if level == "" {
			level = "info"
		}
	}
	logLevel, ok := levelMap[level]
	if !ok {
		var valid []string
		for k := range levelMap {
			valid = append(valid, k)
		}
		slices.Sort(valid)
		return nil, fmt.Errorf("invalid log level: %s; supported: %s", level, strings.Join(valid, ", "))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	// This sets a default global logger for both slog and legacy log packages.
	slog.SetDefault(logger)
	return logger, nil
}

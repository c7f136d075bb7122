// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package context

import (
	"context"
	"log/slog"
)

type (
	Context = context.Context
	ctxKey  int
)

var (
	Background  = context.Background
	WithCancel  = context.WithCancel
	WithTimeout = context.WithTimeout
	WithValue   = context.WithValue
)

const (
	ctxKeyLogger ctxKey = iota
)

// CtxGetLog returns the logger stored in ctx, or the default logger when there is none.
func CtxGetLog(ctx Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

func CtxWithLog(ctx Context, log *slog.Logger) Context {
	return WithValue(ctx, ctxKeyLogger, log)
}

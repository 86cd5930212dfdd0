//go:build !(linux || darwin || freebsd || openbsd)

package main

import (
	"context"
	"runtime/debug"
)

func enableCrashForensics() {
	debug.SetTraceback("crash")
}

func logCoreDumpLimits(context.Context) {}

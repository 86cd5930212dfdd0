package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic records a recovered panic with its stack trace and re-panics.
// Use it with defer at the top of long-running entry points.
func LogPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, r)
	panic(r)
}

func logPanic(logger *zerolog.Logger, r any) {
	if logger == nil || logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		return
	}

	event := logger.WithLevel(zerolog.FatalLevel).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack())
	if err, ok := r.(error); ok {
		event = event.Err(err)
	} else {
		event = event.Interface("panic", r)
	}
	event.Msg("panic")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.WithLevel(zerolog.FatalLevel).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Msg("memory at panic")
}

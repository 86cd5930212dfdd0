package main

import (
	"runtime"

	"github.com/bnema/fruitwm/internal/cli/cmd"
	"github.com/bnema/fruitwm/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.OnRun(logCoreDumpLimits)

	cmd.Execute()
}

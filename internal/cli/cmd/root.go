// Package cmd provides Cobra CLI commands for fruitwm.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fruitwm/internal/cli"
	"github.com/bnema/fruitwm/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	runHooks   []func(context.Context)
	rootCmd    = &cobra.Command{
		Use:   "fruitwm",
		Short: "A small tiling window manager for X11",
		Long: `fruitwm - a small tiling window manager for X11.

Every workspace is a binary tree of splits. Each leaf is a tile holding
windows, and the screen is cut between the two children of every split.

Features:
  - Horizontal and vertical splits with exact pixel tiling
  - Keyboard-driven, bindings configured in TOML
  - Alt+drag to move or resize a window
  - Existing windows are adopted on startup

Use 'fruitwm run' from your X session to start managing windows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need a loaded config
			if skipsAppInit(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// skipsAppInit reports whether cmd must work without a valid config.
func skipsAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "about":
		return true
	}
	return cmd.Annotations[annotationNoApp] == "true"
}

const annotationNoApp = "fruitwm/no-app"

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/fruitwm/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// OnRun registers fn to be called with the window manager context once
// logging is set up, before the display is opened.
func OnRun(fn func(context.Context)) {
	runHooks = append(runHooks, fn)
}

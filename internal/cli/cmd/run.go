package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/bootstrap"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/infrastructure/config"
	"github.com/bnema/fruitwm/internal/infrastructure/x11"
	"github.com/bnema/fruitwm/internal/logging"
)

var runDisplay string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Manage windows on an X display",
	Long: `Take over window management of an X display and run until the display
closes or the process receives SIGINT/SIGTERM.

Fails immediately when another window manager already owns the display.

Examples:
  fruitwm run                  # Manage $DISPLAY
  fruitwm run --display :1     # Manage a nested Xephyr server`,
	RunE: runWM,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runDisplay, "display", "d", "", "X display to manage (default [display] name or $DISPLAY)")
}

func runWM(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	defer logging.LogPanic(log)
	for _, hook := range runHooks {
		hook(ctx)
	}

	display := runDisplay
	if display == "" {
		display = cfg.Display.Name
	}

	bindings, err := usecase.NewGetKeybindingsUseCase(config.NewKeybindingsGateway(app.Manager)).Execute(ctx)
	if err != nil {
		return err
	}
	pointer, err := pointerBindings(cfg.Pointer)
	if err != nil {
		return err
	}

	conn, err := x11.Connect(ctx, display)
	if err != nil {
		return err
	}
	defer conn.Close()

	wm, err := bootstrap.Start(ctx, bootstrap.Ports{
		Session: conn,
		Grabber: conn,
		Keys:    conn,
		Placer:  conn,
		Output:  conn,
		Events:  conn,
	}, bootstrap.Options{
		DisplayName: conn.Display(),
		Keybindings: bindings,
		Pointer:     pointer,
	})
	if err != nil {
		return err
	}

	watchConfig(ctx, app.Manager)

	if err := wm.Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("fruitwm exiting")
	return nil
}

// pointerBindings converts the [pointer] section to drag bindings.
func pointerBindings(cfg config.PointerConfig) (usecase.PointerBindings, error) {
	mask, err := entity.ModifierMask(cfg.Modifiers)
	if err != nil {
		return usecase.PointerBindings{}, fmt.Errorf("pointer.modifiers: %w", err)
	}
	return usecase.PointerBindings{
		Modifier:     mask,
		MoveButton:   uint8(cfg.MoveButton),
		ResizeButton: uint8(cfg.ResizeButton),
	}, nil
}

// watchConfig applies log level changes live. Keybinding and pointer
// changes are picked up on the next start.
func watchConfig(ctx context.Context, mgr *config.Manager) {
	log := logging.FromContext(ctx)
	mgr.OnConfigChange(func(cfg *config.Config) {
		if err := logging.SetGlobalLevel(cfg.Logging.Level); err != nil {
			log.Warn().Err(err).Msg("ignoring log level from reloaded config")
			return
		}
		log.Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}
}

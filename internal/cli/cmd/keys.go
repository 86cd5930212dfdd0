package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/cli/styles"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/infrastructure/config"
	"github.com/bnema/fruitwm/internal/infrastructure/x11"
)

var (
	keysDefaults bool
	keysResolve  bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the effective keybindings",
	Long: `Print every keybinding with its action and modifier mask.

With --resolve, connect to the X display and show the keycodes each key
maps to under the current keyboard mapping. A binding without keycodes
can never fire.

Examples:
  fruitwm keys                 # Bindings from the config file
  fruitwm keys --defaults      # Built-in bindings
  fruitwm keys --resolve       # Include keycodes from $DISPLAY`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysDefaults, "defaults", false, "show the built-in keybindings instead of the configured ones")
	keysCmd.Flags().BoolVarP(&keysResolve, "resolve", "r", false, "resolve keycodes against the X display")
}

func runKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Context()

	uc := usecase.NewGetKeybindingsUseCase(config.NewKeybindingsGateway(app.Manager))
	var (
		bindings []entity.Keybinding
		err      error
	)
	if keysDefaults {
		bindings, err = uc.ExecuteDefaults(ctx)
	} else {
		bindings, err = uc.Execute(ctx)
	}
	if err != nil {
		return err
	}

	var rows []styles.KeyRow
	if keysResolve {
		rows, err = resolvedKeyRows(ctx, app.Config.Display.Name, bindings)
		if err != nil {
			return err
		}
	} else {
		rows, err = keyRows(bindings)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewKeysRenderer(app.Theme).Render(rows))
	return nil
}

func keyRows(bindings []entity.Keybinding) ([]styles.KeyRow, error) {
	rows := make([]styles.KeyRow, 0, len(bindings))
	for _, kb := range bindings {
		mask, err := kb.Mask()
		if err != nil {
			return nil, fmt.Errorf("keybinding %s: %w", kb, err)
		}
		rows = append(rows, styles.KeyRow{
			Action: string(kb.Action),
			Chord:  kb.String(),
			Mask:   uint16(mask),
			Known:  kb.Action.IsKnown(),
		})
	}
	return rows, nil
}

func resolvedKeyRows(ctx context.Context, display string, bindings []entity.Keybinding) ([]styles.KeyRow, error) {
	conn, err := x11.Connect(ctx, display)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	matcher, err := usecase.NewKeyMatcher(ctx, bindings, conn)
	if err != nil {
		return nil, err
	}

	resolved := matcher.Bindings()
	rows := make([]styles.KeyRow, 0, len(resolved))
	for _, rb := range resolved {
		codes := make([]uint8, len(rb.Keycodes))
		for i, kc := range rb.Keycodes {
			codes[i] = uint8(kc)
		}
		rows = append(rows, styles.KeyRow{
			Action:   string(rb.Binding.Action),
			Chord:    rb.Binding.String(),
			Mask:     uint16(rb.Mask),
			Keycodes: codes,
			Known:    rb.Binding.Action.IsKnown(),
		})
	}
	return rows, nil
}

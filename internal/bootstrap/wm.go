// Package bootstrap assembles the window manager from its ports and runs it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// Ports groups the display-server adapters the window manager drives.
// A single X11 connection usually fills every field.
type Ports struct {
	Session port.SessionController
	Grabber port.InputGrabber
	Keys    port.KeyResolver
	Placer  port.WindowPlacer
	Output  port.OutputProvider
	Events  port.EventSource
}

func (p Ports) validate() error {
	var missing []string
	if p.Session == nil {
		missing = append(missing, "session")
	}
	if p.Grabber == nil {
		missing = append(missing, "grabber")
	}
	if p.Keys == nil {
		missing = append(missing, "keys")
	}
	if p.Placer == nil {
		missing = append(missing, "placer")
	}
	if p.Output == nil {
		missing = append(missing, "output")
	}
	if p.Events == nil {
		missing = append(missing, "events")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing ports: %v", missing)
	}
	return nil
}

// Options configures a window manager instance.
type Options struct {
	// DisplayName appears in the diagnostic when the root is already owned.
	DisplayName string
	Keybindings []entity.Keybinding
	Pointer     usecase.PointerBindings
}

// WindowManager is a started window manager ready to run its event loop.
type WindowManager struct {
	state   *entity.State
	loop    *usecase.EventLoopUseCase
	windows *usecase.ManageWindowsUseCase
	keys    *usecase.KeyMatcher
}

// Start claims the display and prepares the layout state:
// the root window is claimed, keybindings are resolved and grabbed together
// with the drag buttons, and already existing windows are adopted.
func Start(ctx context.Context, ports Ports, opts Options) (*WindowManager, error) {
	if err := ports.validate(); err != nil {
		return nil, err
	}
	ctx = logging.WithComponent(ctx, "bootstrap")
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	if err := ports.Session.ClaimRoot(); err != nil {
		if errors.Is(err, port.ErrAnotherWMRunning) {
			return nil, fmt.Errorf("%w on %s", err, opts.DisplayName)
		}
		return nil, fmt.Errorf("failed to claim root window: %w", err)
	}
	timer.Mark("claim_root")

	matcher, err := usecase.NewKeyMatcher(ctx, opts.Keybindings, ports.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve keybindings: %w", err)
	}
	timer.Mark("resolve_keys")

	grabs, err := usecase.NewGrabInputUseCase(ports.Grabber).Execute(ctx, matcher, opts.Pointer)
	if err != nil {
		return nil, fmt.Errorf("failed to grab input: %w", err)
	}
	timer.Mark("grab_input")

	var ids entity.IDSequence
	state := entity.NewState(ids.Generator())

	relayout := usecase.NewRelayoutUseCase(ports.Placer, ports.Output)
	windows := usecase.NewManageWindowsUseCase(ports.Placer, relayout)
	dispatch := usecase.NewDispatchActionUseCase(usecase.NewManageContainersUseCase(ids.Generator()), relayout)
	handler := usecase.NewHandleEventUseCase(usecase.HandleEventDeps{
		Placer:   ports.Placer,
		Windows:  windows,
		Dispatch: dispatch,
		Keys:     matcher,
		Drag:     usecase.NewPointerDragUseCase(ports.Placer, opts.Pointer),
	})

	wm := &WindowManager{
		state:   state,
		loop:    usecase.NewEventLoopUseCase(ports.Events, handler),
		windows: windows,
		keys:    matcher,
	}

	adopted, err := wm.adopt(ctx, ports.Session)
	if err != nil {
		return nil, err
	}
	timer.Mark("adopt_windows")

	log.Info().
		Str("display", opts.DisplayName).
		Int("keybindings", len(opts.Keybindings)).
		Int("grabs", grabs.Grabbed).
		Int("grabs_failed", grabs.Failed).
		Int("adopted", adopted).
		Msg("window manager started")
	timer.Log(ctx)
	return wm, nil
}

// adopt manages every window that existed before the window manager started.
func (wm *WindowManager) adopt(ctx context.Context, session port.SessionController) (int, error) {
	children, err := session.QueryTree()
	if err != nil {
		return 0, fmt.Errorf("failed to list existing windows: %w", err)
	}
	for _, id := range children {
		if err := wm.windows.Manage(ctx, wm.state, id); err != nil {
			return 0, fmt.Errorf("failed to adopt window %d: %w", id, err)
		}
	}
	return len(children), nil
}

// Run processes events until ctx is cancelled or the display goes away.
func (wm *WindowManager) Run(ctx context.Context) error {
	return wm.loop.Run(logging.WithComponent(ctx, "event_loop"), wm.state)
}

// State exposes the layout state.
func (wm *WindowManager) State() *entity.State {
	return wm.state
}

// Keys exposes the resolved keybindings.
func (wm *WindowManager) Keys() *usecase.KeyMatcher {
	return wm.keys
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// HandleEventUseCase routes one display server event to the use case owning it.
type HandleEventUseCase struct {
	placer   port.WindowPlacer
	windows  *ManageWindowsUseCase
	dispatch *DispatchActionUseCase
	keys     *KeyMatcher
	drag     *PointerDragUseCase
}

// HandleEventDeps groups the collaborators of HandleEventUseCase.
type HandleEventDeps struct {
	Placer   port.WindowPlacer
	Windows  *ManageWindowsUseCase
	Dispatch *DispatchActionUseCase
	Keys     *KeyMatcher
	Drag     *PointerDragUseCase
}

// NewHandleEventUseCase creates a new HandleEventUseCase.
func NewHandleEventUseCase(deps HandleEventDeps) *HandleEventUseCase {
	return &HandleEventUseCase{
		placer:   deps.Placer,
		windows:  deps.Windows,
		dispatch: deps.Dispatch,
		keys:     deps.Keys,
		drag:     deps.Drag,
	}
}

// Handle processes ev to completion against state.
func (uc *HandleEventUseCase) Handle(ctx context.Context, state *entity.State, ev port.Event) error {
	if uc == nil || uc.placer == nil || uc.windows == nil || uc.dispatch == nil {
		return fmt.Errorf("handle event use case is nil")
	}
	log := logging.FromContext(ctx)

	switch e := ev.(type) {
	case port.MapRequestEvent:
		return uc.windows.Manage(ctx, state, e.Window)
	case port.UnmapNotifyEvent:
		return uc.windows.Unmanage(ctx, state, e.Window)
	case port.ConfigureRequestEvent:
		uc.placer.ResizeWindow(e.Window, e.Width, e.Height)
		return nil
	case port.KeyPressEvent:
		actions := uc.keys.Match(e.Keycode, e.State)
		log.Trace().
			Uint8("keycode", uint8(e.Keycode)).
			Uint16("state", uint16(e.State)).
			Int("matches", len(actions)).
			Msg("key press")
		var errs []error
		for _, action := range actions {
			if err := uc.dispatch.Execute(ctx, state, action); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	case port.ButtonPressEvent:
		return uc.drag.Press(ctx, e)
	case port.MotionNotifyEvent:
		uc.drag.Motion(ctx, e)
		return nil
	case port.ButtonReleaseEvent:
		uc.drag.Release(ctx, e)
		return nil
	default:
		log.Debug().Str("event", fmt.Sprintf("%T", ev)).Msg("ignoring event")
		return nil
	}
}

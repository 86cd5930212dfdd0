package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// PointerBindings selects the modifier and buttons used to drag windows.
type PointerBindings struct {
	Modifier     entity.Modifier
	MoveButton   uint8
	ResizeButton uint8
}

type drag struct {
	window   entity.WindowID
	button   uint8
	originX  int
	originY  int
	geometry entity.Rect
}

// PointerDragUseCase moves and resizes a window while a grabbed button is held.
type PointerDragUseCase struct {
	placer   port.WindowPlacer
	bindings PointerBindings
	active   *drag
}

// NewPointerDragUseCase creates a new PointerDragUseCase.
func NewPointerDragUseCase(placer port.WindowPlacer, bindings PointerBindings) *PointerDragUseCase {
	return &PointerDragUseCase{placer: placer, bindings: bindings}
}

// Press raises the window under the pointer and starts a drag from its
// current geometry. Presses over the bare root are ignored.
func (uc *PointerDragUseCase) Press(ctx context.Context, ev port.ButtonPressEvent) error {
	if uc == nil || uc.placer == nil {
		return fmt.Errorf("pointer drag use case is nil")
	}
	if ev.Child == 0 {
		return nil
	}

	uc.placer.RaiseWindow(ev.Child)
	geometry, err := uc.placer.GetGeometry(ctx, ev.Child)
	if err != nil {
		uc.active = nil
		return fmt.Errorf("get geometry of window %d: %w", ev.Child, err)
	}

	uc.active = &drag{
		window:   ev.Child,
		button:   ev.Button,
		originX:  ev.RootX,
		originY:  ev.RootY,
		geometry: geometry,
	}
	logging.FromContext(ctx).Debug().
		Uint32("window", uint32(ev.Child)).
		Uint8("button", ev.Button).
		Str("geometry", geometry.String()).
		Msg("drag started")
	return nil
}

// Motion applies the pointer offset since Press to the dragged window.
func (uc *PointerDragUseCase) Motion(_ context.Context, ev port.MotionNotifyEvent) {
	if uc == nil || uc.active == nil {
		return
	}
	d := uc.active
	dx := ev.RootX - d.originX
	dy := ev.RootY - d.originY

	rect := d.geometry
	switch d.button {
	case uc.bindings.MoveButton:
		rect.X += dx
		rect.Y += dy
	case uc.bindings.ResizeButton:
		rect.W = max(1, rect.W+dx)
		rect.H = max(1, rect.H+dy)
	default:
		return
	}
	uc.placer.MoveResizeWindow(d.window, rect)
}

// Release ends the current drag.
func (uc *PointerDragUseCase) Release(ctx context.Context, _ port.ButtonReleaseEvent) {
	if uc == nil || uc.active == nil {
		return
	}
	logging.FromContext(ctx).Debug().Uint32("window", uint32(uc.active.window)).Msg("drag finished")
	uc.active = nil
}

// Dragging reports whether a drag is in progress.
func (uc *PointerDragUseCase) Dragging() bool {
	return uc != nil && uc.active != nil
}

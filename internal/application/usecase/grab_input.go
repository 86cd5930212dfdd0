package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// GrabInputUseCase installs the passive key and button grabs on the root.
type GrabInputUseCase struct {
	grabber port.InputGrabber
}

// NewGrabInputUseCase creates a new GrabInputUseCase.
func NewGrabInputUseCase(grabber port.InputGrabber) *GrabInputUseCase {
	return &GrabInputUseCase{grabber: grabber}
}

// GrabInputOutput counts the grabs that were installed and refused.
type GrabInputOutput struct {
	Grabbed int
	Failed  int
}

// Execute grabs every key the matcher needs and both pointer buttons.
// A refused grab (typically already held by another client) is logged and skipped.
func (uc *GrabInputUseCase) Execute(ctx context.Context, matcher *KeyMatcher, pointer PointerBindings) (*GrabInputOutput, error) {
	if uc == nil || uc.grabber == nil {
		return nil, fmt.Errorf("input grabber is nil")
	}
	log := logging.FromContext(ctx)
	out := &GrabInputOutput{}

	for _, g := range matcher.Grabs() {
		if err := uc.grabber.GrabKey(g.Keycode, g.Mask); err != nil {
			out.Failed++
			log.Warn().Err(err).Uint8("keycode", uint8(g.Keycode)).Uint16("mask", uint16(g.Mask)).Msg("key grab refused")
			continue
		}
		out.Grabbed++
	}

	for _, button := range []uint8{pointer.MoveButton, pointer.ResizeButton} {
		if err := uc.grabber.GrabButton(button, pointer.Modifier); err != nil {
			out.Failed++
			log.Warn().Err(err).Uint8("button", button).Msg("button grab refused")
			continue
		}
		out.Grabbed++
	}

	log.Info().Int("grabbed", out.Grabbed).Int("failed", out.Failed).Msg("input grabs installed")
	return out, nil
}

// DefaultPointerBindings drags with alt held: button 1 moves, button 3 resizes.
func DefaultPointerBindings() PointerBindings {
	return PointerBindings{Modifier: entity.ModAlt, MoveButton: 1, ResizeButton: 3}
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

const pointerGrabMask = xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion

// GrabKey installs a passive grab of keycode with exactly mask on the root window.
func (c *Conn) GrabKey(keycode entity.Keycode, mask entity.Modifier) error {
	err := xproto.GrabKeyChecked(
		c.xc,
		true,
		c.root,
		uint16(mask),
		xproto.Keycode(keycode),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
	).Check()
	if err != nil {
		return fmt.Errorf("grab key %d mask %s: %w", keycode, mask, err)
	}
	return nil
}

// GrabButton installs a passive grab of button with mask on the root window,
// reporting presses, releases and motion while it is held.
func (c *Conn) GrabButton(button uint8, mask entity.Modifier) error {
	err := xproto.GrabButtonChecked(
		c.xc,
		false,
		c.root,
		uint16(pointerGrabMask),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		button,
		uint16(mask),
	).Check()
	if err != nil {
		return fmt.Errorf("grab button %d mask %s: %w", button, mask, err)
	}
	return nil
}

// Keycodes resolves a keysym name against the keyboard mapping loaded at connect time.
func (c *Conn) Keycodes(key string) ([]entity.Keycode, error) {
	codes := keybind.StrToKeycodes(c.xu, key)
	out := make([]entity.Keycode, 0, len(codes))
	for _, code := range codes {
		out = append(out, entity.Keycode(code))
	}
	return out, nil
}

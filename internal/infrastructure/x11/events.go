package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

// NextEvent blocks until an event the window manager handles arrives.
// Other events are dropped. Asynchronous X errors are returned as errors
// and do not end the stream.
func (c *Conn) NextEvent(ctx context.Context) (port.Event, error) {
	c.pumpOnce.Do(func() { go c.pump() })

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case in, ok := <-c.events:
			if !ok {
				return nil, port.ErrEventStreamClosed
			}
			if in.err != nil {
				return nil, fmt.Errorf("x11 error: %w", in.err)
			}
			if ev, handled := translateEvent(in.ev); handled {
				return ev, nil
			}
		}
	}
}

// pump moves events from the connection to c.events until the connection
// closes. WaitForEvent reports a closed connection as (nil, nil).
func (c *Conn) pump() {
	defer close(c.events)
	for {
		ev, xerr := c.xc.WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		select {
		case c.events <- incoming{ev: ev, err: xerr}:
		case <-c.done:
			return
		}
	}
}

func translateEvent(ev xgb.Event) (port.Event, bool) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return port.MapRequestEvent{Window: entity.WindowID(e.Window)}, true
	case xproto.UnmapNotifyEvent:
		return port.UnmapNotifyEvent{Window: entity.WindowID(e.Window)}, true
	case xproto.ConfigureRequestEvent:
		return port.ConfigureRequestEvent{
			Window: entity.WindowID(e.Window),
			Width:  int(e.Width),
			Height: int(e.Height),
		}, true
	case xproto.KeyPressEvent:
		return port.KeyPressEvent{
			Keycode: entity.Keycode(e.Detail),
			State:   entity.Modifier(e.State),
		}, true
	case xproto.ButtonPressEvent:
		return port.ButtonPressEvent{
			Child:  entity.WindowID(e.Child),
			Button: uint8(e.Detail),
			State:  entity.Modifier(e.State),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}, true
	case xproto.ButtonReleaseEvent:
		return port.ButtonReleaseEvent{
			Button: uint8(e.Detail),
			State:  entity.Modifier(e.State),
		}, true
	case xproto.MotionNotifyEvent:
		return port.MotionNotifyEvent{
			RootX: int(e.RootX),
			RootY: int(e.RootY),
			State: entity.Modifier(e.State),
		}, true
	default:
		return nil, false
	}
}

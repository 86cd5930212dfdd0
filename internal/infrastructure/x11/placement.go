package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

// MapWindow shows the window.
func (c *Conn) MapWindow(id entity.WindowID) {
	xproto.MapWindow(c.xc, xproto.Window(id))
}

// MoveResizeWindow places the window at rect. X rejects zero sizes,
// so both extents are clamped to at least one pixel.
func (c *Conn) MoveResizeWindow(id entity.WindowID, rect entity.Rect) {
	xproto.ConfigureWindow(
		c.xc,
		xproto.Window(id),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		moveResizeValues(rect),
	)
}

// ResizeWindow changes only the window size.
func (c *Conn) ResizeWindow(id entity.WindowID, width, height int) {
	xproto.ConfigureWindow(
		c.xc,
		xproto.Window(id),
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{extent(width), extent(height)},
	)
}

// RaiseWindow stacks the window above its siblings.
func (c *Conn) RaiseWindow(id entity.WindowID) {
	xproto.ConfigureWindow(c.xc, xproto.Window(id), xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// GetGeometry queries the window position and size.
func (c *Conn) GetGeometry(ctx context.Context, id entity.WindowID) (entity.Rect, error) {
	if err := ctx.Err(); err != nil {
		return entity.Rect{}, err
	}
	geom, err := xproto.GetGeometry(c.xc, xproto.Drawable(id)).Reply()
	if err != nil {
		return entity.Rect{}, fmt.Errorf("failed to get geometry of window %d: %w", id, err)
	}
	return entity.Rect{
		X: int(geom.X),
		Y: int(geom.Y),
		W: int(geom.Width),
		H: int(geom.Height),
	}, nil
}

// moveResizeValues encodes rect in ConfigureWindow value-list order.
// Negative coordinates travel as their two's complement.
func moveResizeValues(rect entity.Rect) []uint32 {
	return []uint32{
		uint32(int32(rect.X)),
		uint32(int32(rect.Y)),
		extent(rect.W),
		extent(rect.H),
	}
}

func extent(v int) uint32 {
	if v < 1 {
		return 1
	}
	return uint32(v)
}

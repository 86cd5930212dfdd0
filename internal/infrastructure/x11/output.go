package x11

import (
	"github.com/BurntSushi/xgb/xinerama"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

// OutputRect returns the first xinerama head, or the whole screen when
// xinerama is missing or reports no heads.
func (c *Conn) OutputRect() entity.Rect {
	var heads []xinerama.ScreenInfo
	if c.xinerama {
		if reply, err := xinerama.QueryScreens(c.xc).Reply(); err == nil {
			heads = reply.ScreenInfo
		}
	}
	return outputRect(heads, c.screen.WidthInPixels, c.screen.HeightInPixels)
}

func outputRect(heads []xinerama.ScreenInfo, width, height uint16) entity.Rect {
	if len(heads) == 0 {
		return entity.Rect{W: int(width), H: int(height)}
	}
	head := heads[0]
	return entity.Rect{
		X: int(head.XOrg),
		Y: int(head.YOrg),
		W: int(head.Width),
		H: int(head.Height),
	}
}

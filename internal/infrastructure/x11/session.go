package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

const rootEventMask = xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify

// ClaimRoot selects substructure redirection on the root window.
// Only one client may hold it, so a BadAccess reply means another window
// manager is running.
func (c *Conn) ClaimRoot() error {
	err := xproto.ChangeWindowAttributesChecked(
		c.xc,
		c.root,
		xproto.CwEventMask,
		[]uint32{rootEventMask},
	).Check()
	return classifyClaimError(err)
}

func classifyClaimError(err error) error {
	if err == nil {
		return nil
	}
	var accessErr xproto.AccessError
	if errors.As(err, &accessErr) {
		return port.ErrAnotherWMRunning
	}
	return fmt.Errorf("failed to select root window events: %w", err)
}

// QueryTree lists the current children of the root window.
func (c *Conn) QueryTree() ([]entity.WindowID, error) {
	tree, err := xproto.QueryTree(c.xc, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query root window tree: %w", err)
	}
	ids := make([]entity.WindowID, 0, len(tree.Children))
	for _, child := range tree.Children {
		ids = append(ids, entity.WindowID(child))
	}
	return ids, nil
}

// Package layout computes window rectangles from a container tree.
package layout

import (
	"math"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

// Placement is the rectangle assigned to one window.
type Placement struct {
	Window entity.WindowID
	Rect   entity.Rect
}

// Partition cuts rect into the areas owned by the split's left and right children.
// The cut is floor(Size*extent) along the width for horizontal splits and along
// the height for vertical ones. The two results tile rect exactly.
func Partition(split *entity.SplitContainer, rect entity.Rect) (left, right entity.Rect) {
	left, right = rect, rect
	switch split.Orientation {
	case entity.Horizontal:
		cut := cutAt(split.Size, rect.W)
		left.W = cut
		right.X = rect.X + cut
		right.W = rect.W - cut
	case entity.Vertical:
		cut := cutAt(split.Size, rect.H)
		left.H = cut
		right.Y = rect.Y + cut
		right.H = rect.H - cut
	default:
		panic(&entity.InvariantError{Msg: "unknown orientation " + split.Orientation.String()})
	}
	return left, right
}

func cutAt(size float64, extent int) int {
	cut := int(math.Floor(size * float64(extent)))
	return max(0, min(cut, extent))
}

// Compute assigns a rectangle to every window under c.
// Every window of a leaf receives the leaf's full rectangle. Placements are
// ordered left subtree first, and by ascending window id inside a leaf.
func Compute(c entity.Container, rect entity.Rect) []Placement {
	return appendPlacements(nil, c, rect)
}

func appendPlacements(out []Placement, c entity.Container, rect entity.Rect) []Placement {
	switch node := c.(type) {
	case *entity.LeafContainer:
		for _, id := range node.Windows.Sorted() {
			out = append(out, Placement{Window: id, Rect: rect})
		}
		return out
	case *entity.SplitContainer:
		left, right := Partition(node, rect)
		out = appendPlacements(out, node.Left, left)
		return appendPlacements(out, node.Right, right)
	default:
		panic(&entity.InvariantError{Msg: "unknown container in layout"})
	}
}

// LeafRects returns the rectangle of every leaf under c, keyed by container id.
func LeafRects(c entity.Container, rect entity.Rect) map[entity.ContainerID]entity.Rect {
	rects := make(map[entity.ContainerID]entity.Rect)
	collectLeafRects(rects, c, rect)
	return rects
}

func collectLeafRects(rects map[entity.ContainerID]entity.Rect, c entity.Container, rect entity.Rect) {
	switch node := c.(type) {
	case *entity.LeafContainer:
		rects[node.ID] = rect
	case *entity.SplitContainer:
		left, right := Partition(node, rect)
		collectLeafRects(rects, node.Left, left)
		collectLeafRects(rects, node.Right, right)
	default:
		panic(&entity.InvariantError{Msg: "unknown container in layout"})
	}
}

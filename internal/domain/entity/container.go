// Package entity contains domain entities representing the layout tree.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"slices"
)

// ContainerID uniquely identifies a container for the lifetime of the process.
type ContainerID uint64

// WindowID identifies a managed window on the display server.
type WindowID uint32

// Orientation indicates how a split container cuts its rectangle.
type Orientation int

const (
	Horizontal Orientation = iota // Cut along width: left/right
	Vertical                      // Cut along height: top/bottom
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// DefaultSplitSize is the ratio given to the left child of a fresh split.
const DefaultSplitSize = 0.5

// Container is a node of a workspace layout tree.
// It is either a *SplitContainer or a *LeafContainer; consumers switch on
// the concrete type and treat anything else as an invariant violation.
type Container interface {
	ContainerID() ContainerID
	isContainer()
}

// SplitContainer is an internal node owning exactly two children.
type SplitContainer struct {
	ID          ContainerID
	Left        Container
	Right       Container
	Size        float64 // Fraction of the rectangle given to Left, in (0,1)
	Orientation Orientation
}

// LeafContainer holds the set of windows placed in one tile.
type LeafContainer struct {
	ID      ContainerID
	Windows WindowSet
}

func (s *SplitContainer) ContainerID() ContainerID { return s.ID }
func (l *LeafContainer) ContainerID() ContainerID  { return l.ID }

func (*SplitContainer) isContainer() {}
func (*LeafContainer) isContainer()  {}

// NewLeaf creates a leaf holding a copy of windows (which may be nil).
func NewLeaf(id ContainerID, windows WindowSet) *LeafContainer {
	return &LeafContainer{ID: id, Windows: windows.Clone()}
}

// Child returns the child reached by step.
func (s *SplitContainer) Child(step Step) Container {
	if step == StepLeft {
		return s.Left
	}
	return s.Right
}

// SetChild replaces the child reached by step.
func (s *SplitContainer) SetChild(step Step, c Container) {
	if step == StepLeft {
		s.Left = c
		return
	}
	s.Right = c
}

// Walk visits every container under root depth-first, left subtree first,
// calling fn before descending. Returns early if fn returns false.
func Walk(root Container, fn func(Container) bool) {
	switch c := root.(type) {
	case *LeafContainer:
		fn(c)
	case *SplitContainer:
		if !fn(c) {
			return
		}
		Walk(c.Left, fn)
		Walk(c.Right, fn)
	default:
		panic(unknownContainer(root))
	}
}

// Leaves returns every leaf under root in left-to-right order.
func Leaves(root Container) []*LeafContainer {
	var leaves []*LeafContainer
	Walk(root, func(c Container) bool {
		if leaf, ok := c.(*LeafContainer); ok {
			leaves = append(leaves, leaf)
		}
		return true
	})
	return leaves
}

// LeftmostLeaf follows Left links from c until it reaches a leaf.
// The returned path is relative to c.
func LeftmostLeaf(c Container) (*LeafContainer, Path) {
	var path Path
	for {
		switch node := c.(type) {
		case *LeafContainer:
			return node, path
		case *SplitContainer:
			c = node.Left
			path = append(path, StepLeft)
		default:
			panic(unknownContainer(c))
		}
	}
}

func unknownContainer(c Container) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf("unknown container type %T", c)}
}

// WindowSet is an unordered set of window identifiers.
type WindowSet map[WindowID]struct{}

// NewWindowSet creates a set containing ids.
func NewWindowSet(ids ...WindowID) WindowSet {
	s := make(WindowSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id. Adding an id twice is harmless.
func (s WindowSet) Add(id WindowID) {
	s[id] = struct{}{}
}

// Remove deletes id and reports whether it was present.
func (s WindowSet) Remove(id WindowID) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Has reports whether id is in the set.
func (s WindowSet) Has(id WindowID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of windows.
func (s WindowSet) Len() int {
	return len(s)
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s WindowSet) Clone() WindowSet {
	out := make(WindowSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Union adds every window of other to s.
func (s WindowSet) Union(other WindowSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Sorted returns the ids in ascending order.
func (s WindowSet) Sorted() []WindowID {
	ids := make([]WindowID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

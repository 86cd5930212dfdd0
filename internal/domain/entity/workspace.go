package entity

import (
	"errors"
	"fmt"
)

// ErrPathOutOfBounds is returned when a path walks through a leaf.
var ErrPathOutOfBounds = errors.New("path out of bounds")

// InvariantError reports a layout state that every mutator is required to
// prevent. It is raised with panic and never recovered.
type InvariantError struct {
	Msg string
	Err error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return "layout invariant violated: " + e.Msg + ": " + e.Err.Error()
	}
	return "layout invariant violated: " + e.Msg
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Workspace is one independent layout tree plus the path to its focused leaf.
type Workspace struct {
	Tree       Container
	ActivePath Path
}

// NewWorkspace creates a workspace whose tree is the single leaf root.
func NewWorkspace(root *LeafContainer) *Workspace {
	return &Workspace{
		Tree:       root,
		ActivePath: Path{},
	}
}

// Resolve follows path from the root.
func (w *Workspace) Resolve(path Path) (Container, error) {
	current := w.Tree
	for i, step := range path {
		switch node := current.(type) {
		case *SplitContainer:
			current = node.Child(step)
		case *LeafContainer:
			return nil, fmt.Errorf("%w: step %d of %s reaches into leaf %d", ErrPathOutOfBounds, i, path, node.ID)
		default:
			panic(unknownContainer(current))
		}
	}
	return current, nil
}

// ActiveLeaf returns the focused leaf. The active path must always resolve
// to a leaf; anything else panics with *InvariantError.
func (w *Workspace) ActiveLeaf() *LeafContainer {
	c, err := w.Resolve(w.ActivePath)
	if err != nil {
		panic(&InvariantError{Msg: "active path " + w.ActivePath.String() + " does not resolve", Err: err})
	}
	leaf, ok := c.(*LeafContainer)
	if !ok {
		panic(&InvariantError{Msg: fmt.Sprintf("active path %s resolves to %T, not a leaf", w.ActivePath, c)})
	}
	return leaf
}

// ReplaceAt swaps the container found at path for c.
// The empty path replaces the root.
func (w *Workspace) ReplaceAt(path Path, c Container) error {
	step, ok := path.Last()
	if !ok {
		w.Tree = c
		return nil
	}
	parent, err := w.Resolve(path.Parent())
	if err != nil {
		return err
	}
	split, isSplit := parent.(*SplitContainer)
	if !isSplit {
		return fmt.Errorf("%w: parent of %s is a leaf", ErrPathOutOfBounds, path)
	}
	split.SetChild(step, c)
	return nil
}

// ParentOf returns the split owning the container at path.
// ok is false for the root.
func (w *Workspace) ParentOf(path Path) (parent *SplitContainer, ok bool, err error) {
	if len(path) == 0 {
		return nil, false, nil
	}
	c, err := w.Resolve(path.Parent())
	if err != nil {
		return nil, false, err
	}
	split, isSplit := c.(*SplitContainer)
	if !isSplit {
		return nil, false, fmt.Errorf("%w: parent of %s is a leaf", ErrPathOutOfBounds, path)
	}
	return split, true, nil
}

// Leaves returns every leaf of the workspace in left-to-right order.
func (w *Workspace) Leaves() []*LeafContainer {
	return Leaves(w.Tree)
}

// RemoveWindow deletes id from every leaf and reports whether any held it.
func (w *Workspace) RemoveWindow(id WindowID) bool {
	removed := false
	for _, leaf := range w.Leaves() {
		if leaf.Windows.Remove(id) {
			removed = true
		}
	}
	return removed
}

// Windows returns every managed window of the workspace.
func (w *Workspace) Windows() WindowSet {
	all := NewWindowSet()
	for _, leaf := range w.Leaves() {
		all.Union(leaf.Windows)
	}
	return all
}

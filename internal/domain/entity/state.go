package entity

import "fmt"

// State is the whole window manager state: every workspace and which one is shown.
// It is built once at startup and passed explicitly to every operation.
type State struct {
	Workspaces  []*Workspace
	ActiveIndex int
}

// NewState creates a state holding a single workspace with an empty root leaf.
func NewState(ids IDGenerator) *State {
	return &State{
		Workspaces:  []*Workspace{NewWorkspace(NewLeaf(ids(), nil))},
		ActiveIndex: 0,
	}
}

// ActiveWorkspace returns the workspace currently shown.
// An out-of-range index panics with *InvariantError.
func (s *State) ActiveWorkspace() *Workspace {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Workspaces) {
		panic(&InvariantError{Msg: fmt.Sprintf("active workspace index %d out of range [0,%d)", s.ActiveIndex, len(s.Workspaces))})
	}
	return s.Workspaces[s.ActiveIndex]
}

// RemoveWindow removes id from every workspace and reports whether any held it.
func (s *State) RemoveWindow(id WindowID) bool {
	removed := false
	for _, ws := range s.Workspaces {
		if ws.RemoveWindow(id) {
			removed = true
		}
	}
	return removed
}

// Manages reports whether any workspace holds id.
func (s *State) Manages(id WindowID) bool {
	for _, ws := range s.Workspaces {
		for _, leaf := range ws.Leaves() {
			if leaf.Windows.Has(id) {
				return true
			}
		}
	}
	return false
}

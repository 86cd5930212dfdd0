package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nestedWorkspace builds split(1){ leaf(2){10}, split(3){ leaf(4){}, leaf(5){11,12} } }.
func nestedWorkspace() *Workspace {
	inner := &SplitContainer{
		ID:          3,
		Left:        NewLeaf(4, nil),
		Right:       NewLeaf(5, NewWindowSet(11, 12)),
		Size:        0.5,
		Orientation: Vertical,
	}
	root := &SplitContainer{
		ID:          1,
		Left:        NewLeaf(2, NewWindowSet(10)),
		Right:       inner,
		Size:        0.5,
		Orientation: Horizontal,
	}
	return &Workspace{Tree: root, ActivePath: Path{StepRight, StepRight}}
}

func TestWorkspace_Resolve(t *testing.T) {
	ws := nestedWorkspace()

	tests := []struct {
		name   string
		path   Path
		wantID ContainerID
	}{
		{name: "empty path is root", path: Path{}, wantID: 1},
		{name: "left leaf", path: Path{StepLeft}, wantID: 2},
		{name: "inner split", path: Path{StepRight}, wantID: 3},
		{name: "nested right leaf", path: Path{StepRight, StepRight}, wantID: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ws.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, c.ContainerID())
		})
	}
}

func TestWorkspace_Resolve_ThroughLeaf(t *testing.T) {
	ws := nestedWorkspace()

	_, err := ws.Resolve(Path{StepLeft, StepLeft})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathOutOfBounds))
}

func TestWorkspace_ActiveLeaf(t *testing.T) {
	ws := nestedWorkspace()

	leaf := ws.ActiveLeaf()

	assert.Equal(t, ContainerID(5), leaf.ID)
	assert.ElementsMatch(t, []WindowID{11, 12}, leaf.Windows.Sorted())
}

func TestWorkspace_ActiveLeaf_PanicsOnSplit(t *testing.T) {
	ws := nestedWorkspace()
	ws.ActivePath = Path{StepRight}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		var invErr *InvariantError
		require.ErrorAs(t, r.(error), &invErr)
		assert.Contains(t, invErr.Error(), "not a leaf")
	}()

	ws.ActiveLeaf()
	t.Fatal("ActiveLeaf should have panicked")
}

func TestWorkspace_ActiveLeaf_PanicsOnBrokenPath(t *testing.T) {
	ws := nestedWorkspace()
	ws.ActivePath = Path{StepLeft, StepRight}

	assert.PanicsWithError(t,
		"layout invariant violated: active path [left right] does not resolve: path out of bounds: step 1 of [left right] reaches into leaf 2",
		func() { ws.ActiveLeaf() })
}

func TestWorkspace_ReplaceAt(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		ws := nestedWorkspace()
		replacement := NewLeaf(99, nil)

		require.NoError(t, ws.ReplaceAt(Path{}, replacement))

		assert.Same(t, replacement, ws.Tree)
	})

	t.Run("nested", func(t *testing.T) {
		ws := nestedWorkspace()
		replacement := NewLeaf(99, NewWindowSet(7))

		require.NoError(t, ws.ReplaceAt(Path{StepRight, StepLeft}, replacement))

		got, err := ws.Resolve(Path{StepRight, StepLeft})
		require.NoError(t, err)
		assert.Same(t, replacement, got)
		// Sibling untouched.
		sibling, err := ws.Resolve(Path{StepRight, StepRight})
		require.NoError(t, err)
		assert.Equal(t, ContainerID(5), sibling.ContainerID())
	})

	t.Run("through leaf", func(t *testing.T) {
		ws := nestedWorkspace()

		err := ws.ReplaceAt(Path{StepLeft, StepLeft}, NewLeaf(99, nil))

		assert.ErrorIs(t, err, ErrPathOutOfBounds)
	})
}

func TestWorkspace_ParentOf(t *testing.T) {
	ws := nestedWorkspace()

	parent, ok, err := ws.ParentOf(Path{StepRight, StepLeft})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ContainerID(3), parent.ID)

	_, ok, err = ws.ParentOf(Path{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWorkspace_RemoveWindow(t *testing.T) {
	ws := nestedWorkspace()

	assert.True(t, ws.RemoveWindow(11))
	assert.False(t, ws.RemoveWindow(11))
	assert.Equal(t, []WindowID{10, 12}, ws.Windows().Sorted())
}

func TestLeaves_Order(t *testing.T) {
	ws := nestedWorkspace()

	var ids []ContainerID
	for _, leaf := range ws.Leaves() {
		ids = append(ids, leaf.ID)
	}

	assert.Equal(t, []ContainerID{2, 4, 5}, ids)
}

func TestLeftmostLeaf(t *testing.T) {
	ws := nestedWorkspace()

	leaf, path := LeftmostLeaf(ws.Tree.(*SplitContainer).Right)

	assert.Equal(t, ContainerID(4), leaf.ID)
	assert.Equal(t, Path{StepLeft}, path)
}

func TestState_ActiveWorkspace(t *testing.T) {
	var seq IDSequence
	state := NewState(seq.Generator())

	ws := state.ActiveWorkspace()

	require.NotNil(t, ws)
	assert.Empty(t, ws.ActivePath)
	assert.Equal(t, ContainerID(1), ws.ActiveLeaf().ID)
	assert.Equal(t, ContainerID(2), seq.Next())

	state.ActiveIndex = 3
	assert.Panics(t, func() { state.ActiveWorkspace() })
}

func TestState_RemoveWindowAcrossWorkspaces(t *testing.T) {
	first := NewWorkspace(NewLeaf(1, NewWindowSet(5)))
	second := NewWorkspace(NewLeaf(2, NewWindowSet(5, 6)))
	state := &State{Workspaces: []*Workspace{first, second}}

	assert.True(t, state.Manages(5))
	assert.True(t, state.RemoveWindow(5))
	assert.False(t, state.Manages(5))
	assert.True(t, state.Manages(6))
	assert.False(t, state.RemoveWindow(5))
}

package entity

// Action names a command a keybinding can trigger.
type Action string

const (
	ActionFocusLeft       Action = "FOCUS_LEFT"
	ActionFocusRight      Action = "FOCUS_RIGHT"
	ActionFocusUp         Action = "FOCUS_UP"
	ActionFocusDown       Action = "FOCUS_DOWN"
	ActionCycleWindows    Action = "CYCLE_WINDOWS"
	ActionSplitHorizontal Action = "SPLIT_HORIZONTAL"
	ActionSplitVertical   Action = "SPLIT_VERTICAL"
	ActionDestroySplit    Action = "DESTROY_SPLIT"
	ActionSpawnWorkspace  Action = "SPAWN_WORKSPACE"
	ActionBreakClient     Action = "BREAK_CLIENT"
)

// KnownActions lists every action the dispatcher recognises, in display order.
var KnownActions = []Action{
	ActionFocusLeft,
	ActionFocusRight,
	ActionFocusUp,
	ActionFocusDown,
	ActionCycleWindows,
	ActionSplitHorizontal,
	ActionSplitVertical,
	ActionDestroySplit,
	ActionSpawnWorkspace,
	ActionBreakClient,
}

// IsKnown reports whether a is one of KnownActions.
func (a Action) IsKnown() bool {
	for _, known := range KnownActions {
		if a == known {
			return true
		}
	}
	return false
}

package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionPause
	ActionToggleDebug
	ActionCycleScale
	ActionCount // Must be last - used for array sizing
)

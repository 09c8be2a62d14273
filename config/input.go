package config

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionAttack
	ActionSuperAttack
	ActionDashForward
	ActionDashBack
	ActionCount // Must be last - used for array sizing
)

// ControlScheme selects which half of the keyboard drives a fighter
type ControlScheme int

const (
	ControlSchemeNone ControlScheme = iota // Bot driven
	ControlSchemeLeft                      // WASD side
	ControlSchemeRight                     // Arrow keys side
)

// EdgeTriggered reports whether an action fires once per key press
// rather than for as long as the key is held.
func EdgeTriggered(a ActionID) bool {
	switch a {
	case ActionAttack, ActionSuperAttack, ActionDashForward, ActionDashBack:
		return true
	}
	return false
}

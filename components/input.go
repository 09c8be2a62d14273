package components

import (
	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// IntentData is the set of actions a fighter wants this tick. It is
// produced by the keyboard or by the opponent policy and consumed once by
// the fighter update.
type IntentData struct {
	MoveLeft    bool
	MoveRight   bool
	Jump        bool
	Crouch      bool
	Attack      bool
	SuperAttack bool
	DashForward bool
	DashBack    bool
}

var Intent = donburi.NewComponentType[IntentData]()

// PlayerInputData stores per-player keyboard state for human fighters.
type PlayerInputData struct {
	ControlScheme cfg.ControlScheme
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Pressed reports whether the action is held this frame.
func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.CurrentInput[a]
}

// JustPressed reports whether the action went down this frame.
func (p *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return p.CurrentInput[a] && !p.PreviousInput[a]
}

// Intent converts the snapshot into the fighter's intent for this tick.
func (p *PlayerInputData) Intent() IntentData {
	active := func(a cfg.ActionID) bool {
		if cfg.EdgeTriggered(a) {
			return p.JustPressed(a)
		}
		return p.Pressed(a)
	}
	return IntentData{
		MoveLeft:    active(cfg.ActionMoveLeft),
		MoveRight:   active(cfg.ActionMoveRight),
		Jump:        active(cfg.ActionJump),
		Crouch:      active(cfg.ActionCrouch),
		Attack:      active(cfg.ActionAttack),
		SuperAttack: active(cfg.ActionSuperAttack),
		DashForward: active(cfg.ActionDashForward),
		DashBack:    active(cfg.ActionDashBack),
	}
}

package config

import "image/color"

// StateID is the animation category a fighter is drawn in
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Crouch
	Guard
	Attack
	SuperAttack
	Hit
	Knockdown
	Dash
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	Idle:        "idle",
	Running:     "run",
	Jump:        "jump",
	Crouch:      "crouch",
	Guard:       "guard",
	Attack:      "attack",
	SuperAttack: "super",
	Hit:         "hurt",
	Knockdown:   "down",
	Dash:        "dash",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// StateColors tints the fighter body per animation category
var StateColors = map[StateID]color.RGBA{
	Idle:        {R: 90, G: 160, B: 90, A: 255},
	Running:     {R: 100, G: 180, B: 100, A: 255},
	Jump:        {R: 110, G: 190, B: 130, A: 255},
	Crouch:      {R: 80, G: 140, B: 80, A: 255},
	Guard:       {R: 80, G: 120, B: 200, A: 255},
	Attack:      {R: 220, G: 160, B: 60, A: 255},
	SuperAttack: {R: 255, G: 210, B: 40, A: 255},
	Hit:         {R: 220, G: 80, B: 80, A: 255},
	Knockdown:   {R: 140, G: 60, B: 60, A: 255},
	Dash:        {R: 150, G: 220, B: 220, A: 255},
}

// PlayerTints distinguishes fighter one from fighter two
var PlayerTints = [2]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 200, G: 170, B: 255, A: 255},
}

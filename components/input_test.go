package components

import (
	"testing"

	cfg "github.com/automoto/dinofight/config"
	"github.com/stretchr/testify/assert"
)

func TestPlayerInputIntent(t *testing.T) {
	var p PlayerInputData
	p.CurrentInput[cfg.ActionMoveRight] = true
	p.CurrentInput[cfg.ActionAttack] = true
	p.CurrentInput[cfg.ActionJump] = true

	in := p.Intent()
	assert.True(t, in.MoveRight)
	assert.True(t, in.Attack)
	assert.True(t, in.Jump)
	assert.False(t, in.MoveLeft)

	// Held for a second frame
	p.PreviousInput = p.CurrentInput
	in = p.Intent()
	assert.True(t, in.MoveRight, "movement is level triggered")
	assert.True(t, in.Jump, "jump is level triggered")
	assert.False(t, in.Attack, "attacks fire once per press")
}

func TestEdgeTriggeredActions(t *testing.T) {
	for _, a := range []cfg.ActionID{cfg.ActionAttack, cfg.ActionSuperAttack, cfg.ActionDashForward, cfg.ActionDashBack} {
		var p PlayerInputData
		p.CurrentInput[a] = true
		p.PreviousInput[a] = true
		assert.Equal(t, IntentData{}, p.Intent(), "action %d", a)
	}
}

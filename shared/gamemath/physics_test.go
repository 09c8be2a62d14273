package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecayVelocity(t *testing.T) {
	assert.InDelta(t, 10.2, DecayVelocity(12, 0.85, 0.5), 1e-9)
	assert.InDelta(t, -10.2, DecayVelocity(-12, 0.85, 0.5), 1e-9)
	assert.Zero(t, DecayVelocity(0.5, 0.85, 0.5))

	// Repeated decay always settles at zero
	v := 12.0
	for i := 0; i < 100 && v != 0; i++ {
		v = DecayVelocity(v, 0.85, 0.5)
	}
	assert.Zero(t, v)
}

func TestStepPixels(t *testing.T) {
	assert.Equal(t, 10, StepPixels(10.2))
	assert.Equal(t, 11, StepPixels(10.5))
	assert.Equal(t, -11, StepPixels(-10.5))
	assert.Equal(t, 0, StepPixels(0.4))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-5, 0, 750))
	assert.Equal(t, 750, ClampInt(800, 0, 750))
	assert.Equal(t, 300, ClampInt(300, 0, 750))

	assert.Equal(t, 7, AbsInt(-7))
}

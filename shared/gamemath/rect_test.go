package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 50}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 40, Y: 10, W: 30, H: 20}, true},
		{"contained", Rect{X: 10, Y: 10, W: 5, H: 5}, true},
		{"touching right edge", Rect{X: 50, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 50, W: 10, H: 10}, false},
		{"apart", Rect{X: 100, Y: 100, W: 10, H: 10}, false},
		{"zero width", Rect{X: 10, Y: 10, W: 0, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 50}

	assert.Equal(t, Rect{X: 40, Y: 10, W: 10, H: 20}, a.Intersection(Rect{X: 40, Y: 10, W: 30, H: 20}))
	assert.True(t, a.Intersection(Rect{X: 50, Y: 0, W: 10, H: 10}).Empty())

	x, y := a.Center()
	assert.Equal(t, 25, x)
	assert.Equal(t, 25, y)
}

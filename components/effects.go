package components

import "github.com/yohamta/donburi"

// SparkData is a short-lived hit particle.
type SparkData struct {
	X, Y       float64
	VelX, VelY float64
	Life       int // frames remaining
	MaxLife    int
	Size       float64
	Super      bool
}

var Spark = donburi.NewComponentType[SparkData]()

// Alpha fades the spark out over its life.
func (s *SparkData) Alpha() float64 {
	if s.MaxLife <= 0 {
		return 0
	}
	return float64(s.Life) / float64(s.MaxLife)
}

// FlashData tints a fighter for a few frames after being hit
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

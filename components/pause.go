package components

import "github.com/yohamta/donburi"

// PauseData stores whether the fight is frozen by the players
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

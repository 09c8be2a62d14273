package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Human   = donburi.NewTag().SetName("Human")
	Spark   = donburi.NewTag().SetName("Spark")
)

// Resolv tags for collision
const (
	ResolvFighter = "fighter"
	ResolvAttack  = "attack"
)

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the fighter body mirrored into the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// AttackBoxData is the fighter's attack box mirrored into the resolv space.
// It is only queried while the attack is active.
type AttackBoxData struct {
	*resolv.Object
}

var AttackBox = donburi.NewComponentType[AttackBoxData]()

var Space = donburi.NewComponentType[resolv.Space]()

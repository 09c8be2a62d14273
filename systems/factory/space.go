package factory

import (
	"github.com/automoto/dinofight/archetypes"
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateArenaSpace spawns the collision space covering the whole arena,
// including the air above the ground line.
func CreateArenaSpace(w donburi.World) *resolv.Space {
	entry := archetypes.Space.Spawn(w)
	cell := cfg.Arena.CellSize
	space := resolv.NewSpace(cfg.Arena.Width, max(cfg.C.Height, cfg.Arena.GroundY), cell, cell)
	components.Space.Set(entry, space)
	return space
}

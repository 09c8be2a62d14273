package factory

import (
	"github.com/automoto/dinofight/archetypes"
	"github.com/automoto/dinofight/components"
	"github.com/yohamta/donburi"
)

// CreateSpark spawns one hit particle.
func CreateSpark(w donburi.World, x, y, vx, vy float64, life int, size float64, super bool) *donburi.Entry {
	spark := archetypes.Spark.Spawn(w)
	components.Spark.SetValue(spark, components.SparkData{
		X:       x,
		Y:       y,
		VelX:    vx,
		VelY:    vy,
		Life:    life,
		MaxLife: life,
		Size:    size,
		Super:   super,
	})
	return spark
}

// CreateHUD spawns the HUD singleton with both trails full.
func CreateHUD(w donburi.World, maxHealth int) *donburi.Entry {
	hud := archetypes.HUD.Spawn(w)
	full := float32(maxHealth)
	components.HUD.SetValue(hud, components.HUDData{
		Trail:      [2]float32{full, full},
		LastHealth: [2]int{maxHealth, maxHealth},
	})
	return hud
}

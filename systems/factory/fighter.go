package factory

import (
	"github.com/automoto/dinofight/archetypes"
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Controller says who drives a fighter.
type Controller struct {
	Scheme     cfg.ControlScheme // keyboard side for humans
	Bot        bool
	Difficulty cfg.BotDifficulty
	Seed       int64
}

// Human returns a keyboard controller on the given side.
func Human(scheme cfg.ControlScheme) Controller {
	return Controller{Scheme: scheme}
}

// Bot returns a computer controller.
func Bot(d cfg.BotDifficulty, seed int64) Controller {
	return Controller{Bot: true, Difficulty: d, Seed: seed}
}

// CreateFighter spawns a fighter at spawnX with its body and attack box
// registered in space.
func CreateFighter(w donburi.World, space *resolv.Space, index, spawnX int, ctl Controller) *donburi.Entry {
	var extra []donburi.IComponentType
	if ctl.Bot {
		extra = append(extra, components.Bot)
	} else {
		extra = append(extra, tags.Human, components.PlayerInput)
	}
	fighter := archetypes.Fighter.Spawn(w, extra...)

	f := components.NewFighter(index, spawnX)
	components.Fighter.SetValue(fighter, f)

	body := resolv.NewObject(float64(f.X), float64(f.Y), float64(f.Width), float64(f.Height), tags.ResolvFighter)
	body.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: body})

	r := f.AttackRect()
	box := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tags.ResolvAttack)
	box.Data = fighter
	components.AttackBox.SetValue(fighter, components.AttackBoxData{Object: box})

	if space != nil {
		space.Add(body, box)
	}

	if ctl.Bot {
		components.Bot.SetValue(fighter, components.NewBot(ctl.Difficulty, ctl.Seed))
	} else {
		components.PlayerInput.SetValue(fighter, components.PlayerInputData{
			ControlScheme: ctl.Scheme,
		})
	}

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(fighter, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return fighter
}

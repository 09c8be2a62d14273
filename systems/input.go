package systems

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps each fighter action to the keys that trigger it
type KeyBindings map[cfg.ActionID][]ebiten.Key

// ControlSchemeBindings holds the keyboard layout for each half of the keyboard
var ControlSchemeBindings = map[cfg.ControlScheme]KeyBindings{
	cfg.ControlSchemeLeft: {
		cfg.ActionMoveLeft:    {ebiten.KeyA},
		cfg.ActionMoveRight:   {ebiten.KeyD},
		cfg.ActionJump:        {ebiten.KeyW},
		cfg.ActionCrouch:      {ebiten.KeyS},
		cfg.ActionAttack:      {ebiten.KeyF},
		cfg.ActionSuperAttack: {ebiten.KeyG},
		cfg.ActionDashForward: {ebiten.KeyE},
		cfg.ActionDashBack:    {ebiten.KeyQ},
	},
	cfg.ControlSchemeRight: {
		cfg.ActionMoveLeft:    {ebiten.KeyArrowLeft},
		cfg.ActionMoveRight:   {ebiten.KeyArrowRight},
		cfg.ActionJump:        {ebiten.KeyArrowUp},
		cfg.ActionCrouch:      {ebiten.KeyArrowDown},
		cfg.ActionAttack:      {ebiten.KeyL, ebiten.KeyNumpad1},
		cfg.ActionSuperAttack: {ebiten.KeyK, ebiten.KeyNumpad2},
		cfg.ActionDashForward: {ebiten.KeyO, ebiten.KeyNumpad3},
		cfg.ActionDashBack:    {ebiten.KeyI, ebiten.KeyNumpad0},
	},
}

// UpdateInput polls the keyboard for every human fighter and turns the
// snapshot into that fighter's intent for this tick.
// Must run BEFORE the fighter update in the system order.
func UpdateInput(e *ecs.ECS) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		pollControlScheme(input)
		if entry.HasComponent(components.Intent) {
			components.Intent.SetValue(entry, input.Intent())
		}
	})
}

// pollControlScheme swaps the input buffers and re-reads the bound keys.
func pollControlScheme(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}

	bindings, ok := ControlSchemeBindings[input.ControlScheme]
	if !ok {
		return
	}
	for actionID, keys := range bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				break
			}
		}
	}
}

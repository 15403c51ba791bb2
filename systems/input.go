package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sundog-games/shove/components"
	"github.com/sundog-games/shove/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and writes the per-frame input state.
// Must run before UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)

		input.MoveX, input.MoveY = 0, 0
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			input.MoveX--
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			input.MoveX++
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			input.MoveY--
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
			input.MoveY++
		}

		if input.MoveX != 0 || input.MoveY != 0 {
			input.Aim = physics.Vector{X: input.MoveX, Y: input.MoveY}
		}

		input.Nudge = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	})
}

package components

import (
	"github.com/sundog-games/shove/physics"
	"github.com/yohamta/donburi"
)

// InputData is the per-frame input state consumed by the player system.
type InputData struct {
	MoveX, MoveY float64
	Nudge        bool // edge-triggered

	// Aim is the last non-zero movement direction, used for the nudge ray.
	Aim physics.Vector
}

var Input = donburi.NewComponentType[InputData]()

package components

import (
	"github.com/sundog-games/shove/physics"
	"github.com/yohamta/donburi"
)

// PlayerData holds player interaction state, including the most recent
// nudge ray for the debug overlay.
type PlayerData struct {
	RayOrigin physics.Vector
	RayDir    physics.Vector
	RayHit    *physics.Hit
	RayTimer  int // frames left to draw the last nudge ray
}

var Player = donburi.NewComponentType[PlayerData]()

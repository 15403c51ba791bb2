package components

import (
	"github.com/sundog-games/shove/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the singleton physics space for the scene.
type SpaceData struct {
	*physics.Space
}

var Space = donburi.NewComponentType[SpaceData]()

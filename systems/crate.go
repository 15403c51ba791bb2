package systems

import (
	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrates applies drag so nudged crates glide to a stop.
func UpdateCrates(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	decay := 1 - cfg.Crate.Drag*dt
	if decay < 0 {
		decay = 0
	}

	tags.Crate.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		body.Velocity.X *= decay
		body.Velocity.Y *= decay
	})
}

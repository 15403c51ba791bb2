package systems

import (
	"github.com/sundog-games/shove/components"
	"github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scratch body list reused between frames to avoid per-frame allocation.
var stepBodies []*physics.Body

// UpdatePhysics collects every body in the world and advances the physics
// space one step. The space owns no scene: the snapshot is rebuilt here
// every frame.
func UpdatePhysics(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	stepBodies = stepBodies[:0]
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		stepBodies = append(stepBodies, components.Body.Get(entry).Body)
	})

	space.Step(stepBodies, 1.0/float64(config.C.TPS))
}

// CollectBodies returns a fresh snapshot of every physics body in the
// world, for ad hoc ray and area queries outside the step.
func CollectBodies(e *ecs.ECS) []*physics.Body {
	var bodies []*physics.Body
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		bodies = append(bodies, components.Body.Get(entry).Body)
	})
	return bodies
}

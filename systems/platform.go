package systems

import (
	"github.com/sundog-games/shove/components"
	"github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances each platform's tween sequence and converts the
// offset into a velocity, so motion and pushing both go through the
// physics step.
func UpdatePlatforms(e *ecs.ECS) {
	dt := 1.0 / float64(config.C.TPS)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		tw := components.Tween.Get(entry)
		body := components.Body.Get(entry).Body

		offset, _, _ := tw.Update(float32(dt))
		target := platform.BaseY + float64(offset)
		body.Velocity.Y = (target - body.Position.Y) / dt
	})
}

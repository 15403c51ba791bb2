package systems

import (
	"github.com/sundog-games/shove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts decays the per-entity contact timers set by collision
// handlers during the physics step.
func UpdateContacts(e *ecs.ECS) {
	components.Contact.Each(e.World, func(entry *donburi.Entry) {
		contact := components.Contact.Get(entry)
		if contact.Timer > 0 {
			contact.Timer--
		}
	})
}

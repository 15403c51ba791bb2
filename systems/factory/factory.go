// Package factory constructs the sandbox entities and their physics
// bodies.
package factory

import (
	"github.com/sundog-games/shove/archetypes"
	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/leveldata"
	"github.com/sundog-games/shove/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactFlashFrames is how long a body stays marked after a collision.
const contactFlashFrames = 15

var nextBodyID uint64

func newBodyID() uint64 {
	nextBodyID++
	return nextBodyID
}

// CreateSpace spawns the singleton physics space configured from the
// process config.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	space := physics.NewSpace(cfg.Physics.CellSize)
	space.Gravity = physics.Vector{X: cfg.Physics.GravityX, Y: cfg.Physics.GravityY}
	space.Iterations = cfg.Physics.Iterations

	entry := archetypes.Space.Spawn(e)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry
}

// CreatePlayer spawns the player at a spawn point. The player body is
// non-solid: walls and crates correct it rather than exchange velocity
// with it.
func CreatePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)

	body := &physics.Body{
		ID:       newBodyID(),
		Position: physics.Vector{X: x, Y: y},
		Collider: &physics.Collider{W: cfg.Player.Width, H: cfg.Player.Height},
		Active:   true,
	}
	attachContactFlash(entry, body)
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return entry
}

// CreateCrate spawns a solid pushable crate.
func CreateCrate(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Crate.Spawn(e)

	body := &physics.Body{
		ID:       newBodyID(),
		Position: physics.Vector{X: x, Y: y},
		Collider: &physics.Collider{W: cfg.Crate.Size, H: cfg.Crate.Size},
		Active:   true,
		Solid:    true,
	}
	attachContactFlash(entry, body)
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return entry
}

// CreateWall spawns a static solid rectangle.
func CreateWall(e *ecs.ECS, rect leveldata.Rect) *donburi.Entry {
	entry := archetypes.Wall.Spawn(e)
	components.Body.SetValue(entry, components.BodyData{Body: staticBody(rect, true)})
	return entry
}

// CreateSensor spawns a non-solid trigger rectangle that flashes on
// contact.
func CreateSensor(e *ecs.ECS, rect leveldata.Rect) *donburi.Entry {
	entry := archetypes.Sensor.Spawn(e)

	body := staticBody(rect, false)
	attachContactFlash(entry, body)
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return entry
}

// CreateFloatingPlatform spawns a solid platform that patrols vertically
// on a looping tween sequence.
func CreateFloatingPlatform(e *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	entry := archetypes.Platform.Spawn(e)
	components.Body.SetValue(entry, components.BodyData{Body: staticBody(p.Rect, true)})
	components.Platform.SetValue(entry, components.PlatformData{BaseY: p.Y})

	// Back and forth over the travel range, forever.
	tw := gween.NewSequence(
		gween.New(0, float32(-p.Travel), 2, ease.InOutQuad),
		gween.New(float32(-p.Travel), 0, 2, ease.InOutQuad),
	)
	tw.SetLoop(-1)
	components.Tween.Set(entry, tw)

	return entry
}

func staticBody(rect leveldata.Rect, solid bool) *physics.Body {
	return &physics.Body{
		ID:       newBodyID(),
		Position: physics.Vector{X: rect.X, Y: rect.Y},
		Collider: &physics.Collider{W: rect.W, H: rect.H},
		Active:   true,
		Solid:    solid,
	}
}

// attachContactFlash wires the body's collision handler to the entity's
// contact timer.
func attachContactFlash(entry *donburi.Entry, body *physics.Body) {
	contact := components.Contact.Get(entry)
	body.Handler = physics.CollidableFunc(func(*physics.Body) {
		contact.Timer = contactFlashFrames
	})
}

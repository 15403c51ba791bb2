package archetypes

import (
	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Input,
		components.Contact,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Body,
		components.Contact,
		components.Highlight,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
		components.Tween,
	)
	Sensor = newArchetype(
		tags.Sensor,
		components.Body,
		components.Contact,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

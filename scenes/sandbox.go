package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sundog-games/shove/archetypes"
	"github.com/sundog-games/shove/assets"
	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/leveldata"
	"github.com/sundog-games/shove/systems"
	"github.com/sundog-games/shove/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is the playable collision sandbox: one player, pushable
// crates, trigger zones, and a patrolling platform, all driven by the
// physics space.
type SandboxScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdateSettings)
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdateCrates)
	world.AddSystem(systems.UpdatePlatforms)
	world.AddSystem(systems.UpdatePhysics)
	world.AddSystem(systems.UpdateContacts)

	world.AddRenderer(cfg.Default, systems.DrawWorld)

	factory.CreateSpace(world)
	s.spawnSettings(world)

	level, err := leveldata.Load(assets.FS, "levels/sandbox.tmx")
	if err != nil {
		log.Fatalf("load sandbox level: %v", err)
	}
	s.populate(world, level)

	s.ecs = world
}

// spawnSettings creates the settings singleton, seeded from disk.
func (s *SandboxScene) spawnSettings(world *ecs.ECS) {
	entry := archetypes.Settings.Spawn(world)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		components.Settings.Get(entry).Debug = saved.Debug
	}
}

// populate spawns one entity per level object.
func (s *SandboxScene) populate(world *ecs.ECS, level *leveldata.Level) {
	levelEntry := archetypes.Level.Spawn(world)
	components.Level.Get(levelEntry).Current = level

	for _, wall := range level.Walls {
		factory.CreateWall(world, wall)
	}
	for _, sensor := range level.Sensors {
		factory.CreateSensor(world, sensor)
	}
	for _, platform := range level.Platforms {
		factory.CreateFloatingPlatform(world, platform)
	}
	for _, spawn := range level.Spawns {
		switch spawn.Name {
		case "player":
			factory.CreatePlayer(world, spawn.X, spawn.Y)
		case "crate":
			factory.CreateCrate(world, spawn.X, spawn.Y)
		}
	}
}

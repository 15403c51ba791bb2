package systems

import (
	"math"

	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/physics"
	"github.com/sundog-games/shove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into player velocity, fires the nudge ray, and
// refreshes the highlight set around the player.
func UpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.Input.Get(entry)
		body := components.Body.Get(entry).Body

		// Normalize diagonals so the player moves at constant speed.
		speed := cfg.Player.Speed
		if input.MoveX != 0 && input.MoveY != 0 {
			speed /= math.Sqrt2
		}
		body.Velocity.X = input.MoveX * speed
		body.Velocity.Y = input.MoveY * speed

		if player.RayTimer > 0 {
			player.RayTimer--
		}

		if input.Nudge {
			nudge(e, player, input, body)
		}

		updateHighlights(e, body)
	})
}

// nudge casts a ray along the aim direction and shoves the first body hit.
func nudge(e *ecs.ECS, player *components.PlayerData, input *components.InputData, body *physics.Body) {
	origin := physics.Vector{
		X: body.Position.X + body.Collider.OffsetX + body.Collider.W/2,
		Y: body.Position.Y + body.Collider.OffsetY + body.Collider.H/2,
	}
	dir := input.Aim
	if dir.X == 0 && dir.Y == 0 {
		dir = physics.Vector{X: 1}
	}

	candidates := CollectBodies(e)
	// The ray starts inside the player; exclude it.
	filtered := candidates[:0]
	for _, c := range candidates {
		if c != body {
			filtered = append(filtered, c)
		}
	}

	hits := physics.Raycast(origin, dir, cfg.Player.NudgeRange, filtered)

	player.RayOrigin = origin
	player.RayDir = dir
	player.RayHit = nil
	player.RayTimer = 30

	if len(hits) == 0 {
		return
	}
	hit := hits[0]
	player.RayHit = &hit

	length := math.Hypot(dir.X, dir.Y)
	hit.Body.Velocity.X += dir.X / length * cfg.Player.NudgeImpulse
	hit.Body.Velocity.Y += dir.Y / length * cfg.Player.NudgeImpulse
}

// updateHighlights marks crates within the player's query radius.
func updateHighlights(e *ecs.ECS, playerBody *physics.Body) {
	near := physics.ObjectsInArea(playerBody.Position, cfg.Player.QueryRadius, CollectBodies(e))
	nearIDs := make(map[uint64]bool, len(near))
	for _, b := range near {
		nearIDs[b.ID] = true
	}

	tags.Crate.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		highlight := components.Highlight.Get(entry)
		highlight.Active = nearIDs[body.ID]
	})
}

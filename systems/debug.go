package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sundog-games/shove/components"
	cfg "github.com/sundog-games/shove/config"
	"github.com/sundog-games/shove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorWall      = color.RGBA{100, 100, 100, 255}
	colorPlayer    = color.RGBA{80, 140, 255, 255}
	colorCrate     = color.RGBA{200, 160, 80, 255}
	colorHighlight = color.RGBA{255, 230, 90, 255}
	colorSensor    = color.RGBA{0, 200, 180, 255}
	colorContact   = color.RGBA{255, 80, 80, 255}
	colorPlatform  = color.RGBA{150, 90, 200, 255}
	colorRay       = color.RGBA{255, 255, 255, 180}
)

// DrawWorld renders every body as a rectangle outline plus the last nudge
// ray. Rectangles are all the sandbox draws: sprite rendering is out of
// scope for this repository.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		bounds, ok := body.Bounds()
		if !ok || !body.Active || body.Destroyed {
			return
		}

		c := bodyColor(entry)
		if entry.HasComponent(components.Contact) {
			if components.Contact.Get(entry).Timer > 0 {
				c = colorContact
			}
		}

		drawRectOutline(screen, bounds.X, bounds.Y, bounds.W, bounds.H, c)
	})

	drawNudgeRay(e, screen)
	drawHUD(e, screen)
}

func bodyColor(entry *donburi.Entry) color.RGBA {
	switch {
	case entry.HasComponent(tags.Player):
		return colorPlayer
	case entry.HasComponent(tags.Crate):
		if components.Highlight.Get(entry).Active {
			return colorHighlight
		}
		return colorCrate
	case entry.HasComponent(tags.Sensor):
		return colorSensor
	case entry.HasComponent(tags.Platform):
		return colorPlatform
	default:
		return colorWall
	}
}

func drawRectOutline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}

func drawNudgeRay(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.RayTimer <= 0 {
			return
		}

		if hit := player.RayHit; hit != nil {
			vector.StrokeLine(screen,
				float32(player.RayOrigin.X), float32(player.RayOrigin.Y),
				float32(hit.Point.X), float32(hit.Point.Y), 1, colorRay, false)
			vector.FillRect(screen, float32(hit.Point.X)-2, float32(hit.Point.Y)-2, 4, 4, colorContact, false)
			return
		}

		// Miss: draw the ray out to its full range.
		length := math.Hypot(player.RayDir.X, player.RayDir.Y)
		if length == 0 {
			return
		}
		endX := player.RayOrigin.X + player.RayDir.X/length*cfg.Player.NudgeRange
		endY := player.RayOrigin.Y + player.RayDir.Y/length*cfg.Player.NudgeRange
		vector.StrokeLine(screen,
			float32(player.RayOrigin.X), float32(player.RayOrigin.Y),
			float32(endX), float32(endY), 1, colorRay, false)
	})
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok || !components.Settings.Get(settingsEntry).Debug {
		return
	}

	bodies := 0
	components.Body.Each(e.World, func(*donburi.Entry) { bodies++ })
	ebitenutil.DebugPrint(screen, fmt.Sprintf("bodies: %d  tps: %0.1f", bodies, ebiten.ActualTPS()))
}

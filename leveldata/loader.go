package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// defaultTravel is the platform travel distance used when the TMX object
// carries no "travel" property.
const defaultTravel = 128

// Load parses a TMX file and returns its collision geometry. It takes an
// fs.FS so callers can pass embed.FS (client) or a fstest.MapFS (tests).
//
// Object groups are matched by name: "Walls" become static solids,
// "Sensors" become trigger rects, "Platforms" become moving solids, and
// "Spawns" are named spawn points. Unknown groups are ignored.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		PixelW: levelMap.Width * levelMap.TileWidth,
		PixelH: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Sensors":
			for _, o := range og.Objects {
				level.Sensors = append(level.Sensors, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				travel := float64(o.Properties.GetInt("travel"))
				if travel == 0 {
					travel = defaultTravel
				}
				level.Platforms = append(level.Platforms, Platform{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Travel: travel,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, Spawn{Name: o.Name, X: o.X, Y: o.Y})
			}
		}
	}

	return level, nil
}

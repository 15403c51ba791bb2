// Package leveldata parses TMX level files into plain collision geometry.
// It has no engine or ECS dependencies and returns pure data.
package leveldata

// Level holds everything parsed from one TMX file that the sandbox needs
// to populate a world.
type Level struct {
	Walls     []Rect
	Sensors   []Rect
	Platforms []Platform
	Spawns    []Spawn
	PixelW    int
	PixelH    int
}

// Rect is a static rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Platform is a moving solid rectangle with a vertical travel range.
type Platform struct {
	Rect
	Travel float64
}

// Spawn is a named spawn point ("player", "crate", ...).
type Spawn struct {
	Name string
	X, Y float64
}

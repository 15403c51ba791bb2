package physics

import "math"

// cellKey identifies one grid cell by its integer cell coordinates.
type cellKey struct {
	X, Y int
}

// SpatialGrid is the broad phase: a sparse uniform grid mapping cell
// coordinates to the bodies whose bounds overlap that cell. A body spanning
// several cells is inserted into every one of them, so candidate pairs must
// be deduplicated downstream. The grid is rebuilt from scratch every step.
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey][]*Body
}

// NewSpatialGrid creates an empty grid with the given cell size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]*Body),
	}
}

// Clear discards all buckets.
func (g *SpatialGrid) Clear() {
	clear(g.cells)
}

// Insert appends the body to every cell its bounds overlap. Bodies without
// a collider, inactive bodies, and destroyed bodies are not inserted.
func (g *SpatialGrid) Insert(b *Body) {
	if !b.eligible() {
		return
	}
	bounds, _ := b.Bounds()
	minX, minY, maxX, maxY := g.cellRange(bounds)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			key := cellKey{cx, cy}
			g.cells[key] = append(g.cells[key], b)
		}
	}
}

// cellRange returns the inclusive range of cell coordinates covered by a
// rectangle.
func (g *SpatialGrid) cellRange(r Rect) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(r.X / g.cellSize))
	minY = int(math.Floor(r.Y / g.cellSize))
	maxX = int(math.Floor(r.Right() / g.cellSize))
	maxY = int(math.Floor(r.Bottom() / g.cellSize))
	return minX, minY, maxX, maxY
}

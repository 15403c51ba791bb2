package physics

import (
	"math"
	"sort"
)

// Hit is one raycast intersection, produced transiently per query.
type Hit struct {
	Body     *Body
	Point    Vector
	Distance float64
	Normal   Vector
}

// Raycast intersects a ray with every eligible body in the supplied list
// using the slab method and returns the hits sorted ascending by distance.
// The direction is normalized internally; a zero direction yields no hits.
// Axis-aligned rays are handled by substituting signed infinities for the
// degenerate axis rather than dividing by zero.
func Raycast(origin, direction Vector, maxDistance float64, bodies []*Body) []Hit {
	length := math.Hypot(direction.X, direction.Y)
	if length == 0 {
		return nil
	}
	dir := Vector{X: direction.X / length, Y: direction.Y / length}

	var hits []Hit
	for _, b := range bodies {
		if !b.eligible() {
			continue
		}
		bounds, _ := b.Bounds()
		hit, ok := intersectRay(origin, dir, maxDistance, bounds)
		if !ok {
			continue
		}
		hit.Body = b
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// intersectRay computes the slab intersection of a normalized ray with one
// AABB. ok is false when the box is behind the ray, beyond maxDistance, or
// missed entirely.
func intersectRay(origin, dir Vector, maxDistance float64, bounds Rect) (Hit, bool) {
	t1x, t2x, ok := slab(origin.X, dir.X, bounds.X, bounds.Right())
	if !ok {
		return Hit{}, false
	}
	t1y, t2y, ok := slab(origin.Y, dir.Y, bounds.Y, bounds.Bottom())
	if !ok {
		return Hit{}, false
	}

	tEntry := max(min(t1x, t2x), min(t1y, t2y))
	tExit := min(max(t1x, t2x), max(t1y, t2y))

	if tExit < 0 || tEntry > tExit || tEntry > maxDistance {
		return Hit{}, false
	}

	// A negative entry means the origin is inside the box; report the exit.
	dist := tEntry
	if dist <= 0 {
		dist = tExit
	}

	point := Vector{X: origin.X + dir.X*dist, Y: origin.Y + dir.Y*dist}
	return Hit{
		Point:    point,
		Distance: dist,
		Normal:   faceNormal(point, bounds),
	}, true
}

// slab returns the parametric distances at which the ray crosses the two
// planes of one axis. A zero direction component degenerates to the whole
// line when the origin lies between the planes; ok is false when it lies
// outside them, in which case the ray can never enter the box.
func slab(origin, dir, minV, maxV float64) (t1, t2 float64, ok bool) {
	if dir == 0 {
		if origin < minV || origin > maxV {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	return (minV - origin) / dir, (maxV - origin) / dir, true
}

// faceNormal derives the outward unit normal of the face containing the
// hit point: the axis with the larger offset from the box center, signed
// by that offset.
func faceNormal(point Vector, bounds Rect) Vector {
	offX := point.X - (bounds.X + bounds.W/2)
	offY := point.Y - (bounds.Y + bounds.H/2)
	if math.Abs(offX) >= math.Abs(offY) {
		if offX < 0 {
			return Vector{X: -1}
		}
		return Vector{X: 1}
	}
	if offY < 0 {
		return Vector{Y: -1}
	}
	return Vector{Y: 1}
}

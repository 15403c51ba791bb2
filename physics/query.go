package physics

import "math"

// ObjectsInArea returns every active, non-destroyed body whose position
// lies within radius of center, boundary inclusive. A collider is not
// required; the body's position alone decides membership.
func ObjectsInArea(center Vector, radius float64, bodies []*Body) []*Body {
	var found []*Body
	for _, b := range bodies {
		if !b.Active || b.Destroyed {
			continue
		}
		if math.Hypot(b.Position.X-center.X, b.Position.Y-center.Y) <= radius {
			found = append(found, b)
		}
	}
	return found
}

// ObjectsInRect returns every active, non-destroyed, collider-bearing body
// whose bounds overlap rect, using the same strict AABB test as the narrow
// phase.
func ObjectsInRect(rect Rect, bodies []*Body) []*Body {
	var found []*Body
	for _, b := range bodies {
		if !b.eligible() {
			continue
		}
		bounds, _ := b.Bounds()
		if bounds.Overlaps(rect) {
			found = append(found, b)
		}
	}
	return found
}

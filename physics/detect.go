package physics

// Test is the narrow phase: it reports whether two bodies currently
// overlap. Bodies that lack a collider, are inactive, or are destroyed
// never overlap anything; otherwise the strict AABB test applies, so
// zero-size bounds and edge contact both count as no overlap.
func Test(a, b *Body) bool {
	if !a.eligible() || !b.eligible() {
		return false
	}
	ab, _ := a.Bounds()
	bb, _ := b.Bounds()
	return ab.Overlaps(bb)
}

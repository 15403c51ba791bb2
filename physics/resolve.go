package physics

// damping attenuates exchanged velocities on solid/solid contact,
// simulating energy loss.
const damping = 0.8

// Resolve notifies both bodies of the contact and then applies the
// positional and velocity response for the pair. Callbacks run first,
// unconditionally, and may mutate the bodies (including moving them apart
// or destroying one), so all geometry is re-read after notification.
func Resolve(a, b *Body) {
	a.notify(b)
	b.notify(a)

	if !a.eligible() || !b.eligible() {
		return
	}
	ab, _ := a.Bounds()
	bb, _ := b.Bounds()
	if !ab.Overlaps(bb) {
		return
	}

	switch {
	case a.Solid && b.Solid:
		separateSolid(a, b, ab, bb)
	case a.Solid != b.Solid:
		// Exactly one side is solid: the non-solid body is the mover,
		// corrected against the solid side.
		if a.Solid {
			separateFromSolid(b, bb, ab)
		} else {
			separateFromSolid(a, ab, bb)
		}
	default:
		// Neither solid: pure trigger, callbacks only.
	}
}

// overlapAmounts returns the penetration depth on each axis for two
// overlapping rectangles.
func overlapAmounts(a, b Rect) (x, y float64) {
	x = min(a.Right(), b.Right()) - max(a.X, b.X)
	y = min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
	return x, y
}

// separateSolid pushes two solid bodies half the overlap each along the
// axis of minimum overlap (tie resolves to X) and exchanges their velocity
// components on that axis, both damped.
func separateSolid(a, b *Body, ab, bb Rect) {
	overlapX, overlapY := overlapAmounts(ab, bb)
	if overlapX <= overlapY {
		half := overlapX / 2
		if ab.X < bb.X {
			half = -half
		}
		a.Position.X += half
		b.Position.X -= half
		a.Velocity.X, b.Velocity.X = b.Velocity.X*damping, a.Velocity.X*damping
	} else {
		half := overlapY / 2
		if ab.Y < bb.Y {
			half = -half
		}
		a.Position.Y += half
		b.Position.Y -= half
		a.Velocity.Y, b.Velocity.Y = b.Velocity.Y*damping, a.Velocity.Y*damping
	}
}

// separateFromSolid pushes the mover out of the solid body by the full
// overlap along the axis of minimum overlap and zeroes the mover's
// velocity on that axis only. The solid side is left untouched.
func separateFromSolid(mover *Body, mb, sb Rect) {
	overlapX, overlapY := overlapAmounts(mb, sb)
	if overlapX <= overlapY {
		if mb.X < sb.X {
			mover.Position.X -= overlapX
		} else {
			mover.Position.X += overlapX
		}
		mover.Velocity.X = 0
	} else {
		if mb.Y < sb.Y {
			mover.Position.Y -= overlapY
		} else {
			mover.Position.Y += overlapY
		}
		mover.Velocity.Y = 0
	}
}

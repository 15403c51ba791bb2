// Package physics implements the per-frame collision and resolution core:
// a uniform-grid broad phase, AABB narrow phase, positional/velocity
// resolution, and on-demand ray and area queries. It owns no scene: the
// caller supplies the body list every step.
package physics

// Vector is a 2D vector in world units.
type Vector struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle described by origin and size.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles overlap using a strict test:
// touching edges do not count, and zero-size rectangles overlap nothing.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Collider describes a body's collision box relative to its position.
// A body without a collider is excluded from every collision phase.
type Collider struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// Collidable receives collision notifications. The resolver calls
// OnCollision on both sides of a detected pair, passing the peer, before
// any positional correction is applied. Implementations may mutate the
// bodies under resolution; the resolver re-reads state afterwards.
type Collidable interface {
	OnCollision(other *Body)
}

// CollidableFunc adapts a plain function to the Collidable interface.
type CollidableFunc func(other *Body)

// OnCollision calls f(other).
func (f CollidableFunc) OnCollision(other *Body) { f(other) }

// Body is the physical state of one entity. The core never creates or
// destroys bodies; it only reads and writes Position and Velocity and
// invokes notification callbacks. Lifecycle flags are owned by the caller:
// a destroyed body is skipped in every phase.
type Body struct {
	ID       uint64
	Position Vector
	Velocity Vector
	Collider *Collider

	Active    bool
	Destroyed bool
	Solid     bool

	// GravityScale scales the space's gravity vector for this body.
	// The zero default keeps level geometry inert.
	GravityScale float64

	// Handler, if set, is notified of every collision this body is part
	// of. Behaviors are notified after the handler, in order.
	Handler   Collidable
	Behaviors []Collidable
}

// Bounds derives the body's world-space AABB from its position and
// collider. The second return is false when the body has no collider.
func (b *Body) Bounds() (Rect, bool) {
	if b.Collider == nil {
		return Rect{}, false
	}
	return Rect{
		X: b.Position.X + b.Collider.OffsetX,
		Y: b.Position.Y + b.Collider.OffsetY,
		W: b.Collider.W,
		H: b.Collider.H,
	}, true
}

// eligible reports whether the body participates in collision phases.
func (b *Body) eligible() bool {
	return b.Collider != nil && b.Active && !b.Destroyed
}

// notify invokes the body's collision callbacks with the peer.
func (b *Body) notify(other *Body) {
	if b.Handler != nil {
		b.Handler.OnCollision(other)
	}
	for _, bh := range b.Behaviors {
		bh.OnCollision(other)
	}
}

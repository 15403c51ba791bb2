package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceStepIntegratesGravityAndVelocity(t *testing.T) {
	s := NewSpace(64)
	s.Gravity = Vector{Y: 10}

	falling := newBody(1, 0, 0, 16, 16)
	falling.GravityScale = 1
	inert := newBody(2, 200, 0, 16, 16)
	inert.Velocity = Vector{X: 4}

	s.Step([]*Body{falling, inert}, 0.5)

	// falling: vel.Y = 0 + 10*0.5 = 5, pos.Y = 0 + 5*0.5 = 2.5
	assert.Equal(t, Vector{Y: 5}, falling.Velocity)
	assert.Equal(t, Vector{Y: 2.5}, falling.Position)

	// zero GravityScale leaves the body on its own velocity
	assert.Equal(t, Vector{X: 4}, inert.Velocity)
	assert.Equal(t, Vector{X: 202}, inert.Position)
}

func TestSpaceStepSkipsInactiveAndDestroyed(t *testing.T) {
	s := NewSpace(64)
	s.Gravity = Vector{Y: 10}

	inactive := newBody(1, 0, 0, 16, 16)
	inactive.Active = false
	inactive.GravityScale = 1
	destroyed := newBody(2, 0, 100, 16, 16)
	destroyed.Destroyed = true
	destroyed.Velocity = Vector{X: 5}

	s.Step([]*Body{inactive, destroyed}, 1)

	assert.Equal(t, Vector{}, inactive.Velocity)
	assert.Equal(t, Vector{X: 0, Y: 0}, inactive.Position)
	assert.Equal(t, Vector{X: 0, Y: 100}, destroyed.Position)
}

func TestSpaceStepResolvesPenetration(t *testing.T) {
	s := NewSpace(64)

	wall := newBody(1, 0, 0, 40, 40)
	wall.Solid = true
	mover := newBody(2, 34, 10, 20, 20)
	mover.Velocity = Vector{X: 1, Y: 50}

	// dt=1 moves the mover to x=35, y=60: clear of the wall on Y, 5px into
	// it on X. The step must push it back out and kill the X velocity.
	mover.Position.Y = -50

	s.Step([]*Body{wall, mover}, 1)

	assert.Equal(t, Vector{X: 40, Y: 0}, mover.Position)
	assert.Equal(t, Vector{X: 0, Y: 50}, mover.Velocity)
}

func TestSpaceStepPairEvaluatedOncePerFrame(t *testing.T) {
	s := NewSpace(32)

	// The tall body shares four grid cells with its peer; the pair must be
	// detected and resolved exactly once per frame.
	tall := newBody(1, 10, 0, 16, 120)
	peer := newBody(2, 12, 0, 16, 120)

	var tallNotified, peerNotified int
	tall.Handler = CollidableFunc(func(*Body) { tallNotified++ })
	peer.Handler = CollidableFunc(func(*Body) { peerNotified++ })

	s.Step([]*Body{tall, peer}, 0)

	require.Equal(t, 1, tallNotified)
	require.Equal(t, 1, peerNotified)
}

func TestSpaceStepRunsConfiguredIterations(t *testing.T) {
	s := NewSpace(32)
	s.Iterations = 3

	a := newBody(1, 10, 0, 16, 16)
	b := newBody(2, 12, 0, 16, 16)
	var count int
	a.Handler = CollidableFunc(func(*Body) { count++ })

	s.Step([]*Body{a, b}, 0)

	// Neither body is solid, so they stay overlapped and every iteration
	// re-detects the pair.
	assert.Equal(t, 3, count)
}

func TestSpaceStepEmptyBodyList(t *testing.T) {
	s := NewSpace(64)
	assert.NotPanics(t, func() { s.Step(nil, 1.0/60) })
}

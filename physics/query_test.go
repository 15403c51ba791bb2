package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsInAreaBoundaryInclusive(t *testing.T) {
	onEdge := newBody(1, 10, 0, 4, 4)
	inside := newBody(2, 3, 4, 4, 4)
	outside := newBody(3, 10.001, 0, 4, 4)

	found := ObjectsInArea(Vector{}, 10, []*Body{onEdge, inside, outside})

	require.Len(t, found, 2)
	assert.Contains(t, found, onEdge)
	assert.Contains(t, found, inside)
}

func TestObjectsInAreaColliderNotRequired(t *testing.T) {
	bare := &Body{ID: 1, Position: Vector{X: 5}, Active: true}

	found := ObjectsInArea(Vector{}, 10, []*Body{bare})

	assert.Equal(t, []*Body{bare}, found)
}

func TestObjectsInAreaSkipsInactiveAndDestroyed(t *testing.T) {
	inactive := newBody(1, 0, 0, 4, 4)
	inactive.Active = false
	destroyed := newBody(2, 1, 1, 4, 4)
	destroyed.Destroyed = true

	assert.Empty(t, ObjectsInArea(Vector{}, 10, []*Body{inactive, destroyed}))
}

func TestObjectsInRect(t *testing.T) {
	in := newBody(1, 5, 5, 10, 10)
	edge := newBody(2, 20, 0, 10, 10) // touching only: strict test excludes
	out := newBody(3, 50, 50, 10, 10)
	bare := &Body{ID: 4, Position: Vector{X: 5, Y: 5}, Active: true}

	found := ObjectsInRect(Rect{X: 0, Y: 0, W: 20, H: 20}, []*Body{in, edge, out, bare})

	assert.Equal(t, []*Body{in}, found)
}

package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePairsDedupAcrossSharedCells(t *testing.T) {
	g := NewSpatialGrid(32)
	// A tall body spanning four cells vertically, overlapped by one other
	// body across all of them. The pair must come out exactly once.
	tall := newBody(1, 10, 0, 16, 120)
	other := newBody(2, 12, 0, 16, 120)
	g.Insert(tall)
	g.Insert(other)

	pairs := g.CandidatePairs(nil)

	require.Len(t, pairs, 1)
	assert.Equal(t, makePairKey(tall, other), makePairKey(pairs[0].A, pairs[0].B))
}

func TestCandidatePairsDistinctPairs(t *testing.T) {
	g := NewSpatialGrid(64)
	a := newBody(1, 0, 0, 16, 16)
	b := newBody(2, 8, 0, 16, 16)
	c := newBody(3, 200, 200, 16, 16)
	d := newBody(4, 208, 200, 16, 16)
	for _, body := range []*Body{a, b, c, d} {
		g.Insert(body)
	}

	pairs := g.CandidatePairs(nil)

	require.Len(t, pairs, 2)
	// Sorted by canonical key: (1,2) before (3,4).
	assert.Equal(t, pairKey{1, 2}, makePairKey(pairs[0].A, pairs[0].B))
	assert.Equal(t, pairKey{3, 4}, makePairKey(pairs[1].A, pairs[1].B))
}

func TestCandidatePairsEmptyGrid(t *testing.T) {
	g := NewSpatialGrid(64)
	assert.Empty(t, g.CandidatePairs(nil))
}

func TestMakePairKeyOrderIndependent(t *testing.T) {
	a := newBody(7, 0, 0, 1, 1)
	b := newBody(3, 0, 0, 1, 1)
	assert.Equal(t, makePairKey(a, b), makePairKey(b, a))
	assert.Equal(t, pairKey{3, 7}, makePairKey(a, b))
}

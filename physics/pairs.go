package physics

import "sort"

// pairKey is the canonical identity of an unordered body pair: the two ids
// sorted ascending. Keying by value rather than by pair object identity is
// what makes deduplication work when the same logical pair is rediscovered
// through different cells.
type pairKey struct {
	lo, hi uint64
}

func makePairKey(a, b *Body) pairKey {
	if a.ID < b.ID {
		return pairKey{a.ID, b.ID}
	}
	return pairKey{b.ID, a.ID}
}

// Pair is a candidate pair of bodies for the narrow phase.
type Pair struct {
	A, B *Body
}

// CandidatePairs walks every bucket and emits each unordered pair of
// distinct co-resident bodies exactly once, however many cells the two
// share. Pairs are returned sorted by canonical key so resolution order
// does not depend on map iteration order.
func (g *SpatialGrid) CandidatePairs(buf []Pair) []Pair {
	pairs := buf[:0]
	seen := make(map[pairKey]struct{})
	for _, bucket := range g.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				key := makePairKey(bucket[i], bucket[j])
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, Pair{A: bucket[i], B: bucket[j]})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		ki, kj := makePairKey(pairs[i].A, pairs[i].B), makePairKey(pairs[j].A, pairs[j].B)
		if ki.lo != kj.lo {
			return ki.lo < kj.lo
		}
		return ki.hi < kj.hi
	})
	return pairs
}

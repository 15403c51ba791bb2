package physics

// Space holds the process-scoped physics configuration and the scratch
// structures for one step. It holds no body state: the caller supplies a
// fresh snapshot of active bodies every step, and the broad phase is
// rebuilt, not reused, each time. Single-threaded by contract.
type Space struct {
	CellSize   float64
	Gravity    Vector
	Iterations int

	grid  *SpatialGrid
	pairs []Pair
}

// NewSpace creates a space with the given broad-phase cell size and a
// single resolver iteration per step.
func NewSpace(cellSize float64) *Space {
	return &Space{
		CellSize:   cellSize,
		Iterations: 1,
		grid:       NewSpatialGrid(cellSize),
	}
}

// Step advances the simulation one frame: integrate motion, then run the
// grid → pairs → narrow phase → resolver pipeline Iterations times.
// Positions and velocities are mutated in place; collision callbacks fire
// synchronously from inside the resolver.
func (s *Space) Step(bodies []*Body, dt float64) {
	for _, b := range bodies {
		if !b.Active || b.Destroyed {
			continue
		}
		b.Velocity.X += s.Gravity.X * b.GravityScale * dt
		b.Velocity.Y += s.Gravity.Y * b.GravityScale * dt
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
	}

	iterations := s.Iterations
	if iterations < 1 {
		iterations = 1
	}
	for i := 0; i < iterations; i++ {
		s.grid.Clear()
		for _, b := range bodies {
			s.grid.Insert(b)
		}
		s.pairs = s.grid.CandidatePairs(s.pairs)
		for _, p := range s.pairs {
			if Test(p.A, p.B) {
				Resolve(p.A, p.B)
			}
		}
	}
}

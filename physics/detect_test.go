package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowPhaseOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
		want bool
	}{
		{
			name: "overlapping",
			a:    newBody(1, 0, 0, 16, 16),
			b:    newBody(2, 8, 8, 16, 16),
			want: true,
		},
		{
			name: "separated",
			a:    newBody(1, 0, 0, 16, 16),
			b:    newBody(2, 100, 0, 16, 16),
			want: false,
		},
		{
			name: "edge contact is not overlap",
			a:    newBody(1, 0, 0, 16, 16),
			b:    newBody(2, 16, 0, 16, 16),
			want: false,
		},
		{
			name: "containment",
			a:    newBody(1, 0, 0, 64, 64),
			b:    newBody(2, 20, 20, 8, 8),
			want: true,
		},
		{
			name: "zero-size bounds overlap nothing",
			a:    newBody(1, 8, 8, 0, 0),
			b:    newBody(2, 0, 0, 16, 16),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Test(tt.a, tt.b))
			assert.Equal(t, tt.want, Test(tt.b, tt.a), "symmetry")
		})
	}
}

func TestNarrowPhaseEligibility(t *testing.T) {
	base := func() (*Body, *Body) {
		return newBody(1, 0, 0, 16, 16), newBody(2, 8, 8, 16, 16)
	}

	a, b := base()
	a.Collider = nil
	assert.False(t, Test(a, b), "missing collider")

	a, b = base()
	b.Active = false
	assert.False(t, Test(a, b), "inactive")

	a, b = base()
	a.Destroyed = true
	assert.False(t, Test(a, b), "destroyed")
}

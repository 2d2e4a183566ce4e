package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point(13.7563, 100.5018)
	assert.Equal(t, orb.Point{100.5018, 13.7563}, p)
}

func TestDistanceKm_Zero(t *testing.T) {
	p := Point(13.7563, 100.5018)
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Point(13.7563, 100.5018)
	b := Point(13.6900, 100.7501)
	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		a, b     orb.Point
		expected float64
	}{
		{
			name:     "city center to Siam",
			a:        Point(13.7563, 100.5018),
			b:        Point(13.7456, 100.5347),
			expected: 3.75,
		},
		{
			name:     "city center to Suvarnabhumi",
			a:        Point(13.7563, 100.5018),
			b:        Point(13.6900, 100.7501),
			expected: 27.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceKm(tt.a, tt.b), 0.3)
		})
	}
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	a := Point(13.7563, 100.5018)
	b := Point(13.7456, 100.5347)
	c := Point(13.6900, 100.7501)
	assert.LessOrEqual(t, DistanceKm(a, c), DistanceKm(a, b)+DistanceKm(b, c)+1e-9)
}

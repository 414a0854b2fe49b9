package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(-6.2088, 106.8456, -6.2088, 106.8456))
}

func TestDistanceKnownSpan(t *testing.T) {
	// Jakarta city center to Monas is roughly 4.2 km.
	d := Distance(-6.2088, 106.8456, -6.1754, 106.8272)
	assert.InDelta(t, 4200, d, 300)

	// One degree of latitude is about 111 km.
	d = Distance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)
}

func TestWithinRadius(t *testing.T) {
	// ~111 m north of the origin.
	lat := 0.001
	assert.True(t, WithinRadius(lat, 0, 0, 0, 120))
	assert.False(t, WithinRadius(lat, 0, 0, 0, 100))
}

func TestWithinRadiusBoundaryIsInclusive(t *testing.T) {
	d := Distance(0.001, 0, 0, 0)
	assert.True(t, WithinRadius(0.001, 0, 0, 0, d))
}

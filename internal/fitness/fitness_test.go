package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceConversions(t *testing.T) {
	d := Data{Distance: 5000}

	assert.Equal(t, 5.0, d.DistanceKm())
	assert.InDelta(t, 3.107, d.DistanceMiles(), 0.001)
}

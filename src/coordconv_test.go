package cpw2gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tzneal/coordconv"
)

func TestHemisphereToRune(t *testing.T) {
	assert.Equal(t, 'N', HemisphereToRune(coordconv.HemisphereNorth))
	assert.Equal(t, 'S', HemisphereToRune(coordconv.HemisphereSouth))
	assert.Equal(t, '!', HemisphereToRune(coordconv.HemisphereInvalid))
}

func TestGridReference(t *testing.T) {
	var chelmsford = TrackPoint{Latitude: 42662139, Longitude: -71365553}

	var grid = GridReference(chelmsford)
	assert.Contains(t, grid, "utm=19N ")
	assert.NotContains(t, grid, "mgrs=-")

	var south = TrackPoint{Latitude: -33868800, Longitude: 151209300}
	assert.Contains(t, GridReference(south), "utm=56S ")
}

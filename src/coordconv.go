package cpw2gpx

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"

	"github.com/tzneal/coordconv"
)

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// GridReference gives UTM and 1 m MGRS for a point, as shown by cpwdump.
// Either half reads "-" if that conversion failed, e.g. MGRS near the poles.
func GridReference(p TrackPoint) string {
	var latlng = p.LatLng()

	var utm = "-"

	var utmCoord, utmErr = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if utmErr == nil {
		utm = fmt.Sprintf("%d%c %.0f %.0f", utmCoord.Zone, HemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
	}

	var mgrs = "-"

	var mgrsCoord, mgrsErr = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(latlng, 5)
	if mgrsErr == nil {
		mgrs = fmt.Sprint(mgrsCoord)
	}

	return fmt.Sprintf("utm=%s mgrs=%s", utm, mgrs)
}

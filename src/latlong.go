package cpw2gpx

import (
	"github.com/golang/geo/s2"
)

/*------------------------------------------------------------------
 *
 * Function:	LatLng
 *
 * Purpose:	The s2 form of a track point's position, for distance
 *		and grid conversions.
 *
 *------------------------------------------------------------------*/

func (p TrackPoint) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Latitude.Degrees(), p.Longitude.Degrees())
}

// Mean earth radius.
const R_KM = 6371.0088

/*------------------------------------------------------------------
 *
 * Function:	DistanceKm
 *
 * Purpose:	Great circle distance between two points.
 *
 * Returns:	Distance in km.
 *
 *------------------------------------------------------------------*/

func DistanceKm(a, b TrackPoint) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * R_KM
}

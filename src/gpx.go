package cpw2gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/lestrrat-go/strftime"
)

const GPX_NAMESPACE = "http://www.topografix.com/GPX/1/0"

// GPX wants ISO 8601 UTC.
const GPX_TIME_FORMAT = "%Y-%m-%dT%H:%M:%SZ"

var ErrSerialization = errors.New("cannot write GPX")

var gpxTime = mustStrftime(GPX_TIME_FORMAT)

type gpxDoc struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr,omitempty"`
	Xmlns   string   `xml:"xmlns,attr"`
	Track   gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name    string     `xml:"name,omitempty"`
	Segment gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Ele  int32  `xml:"ele"`
	Time string `xml:"time"`
}

/*------------------------------------------------------------------
 *
 * Function:	WriteGPX
 *
 * Purpose:	Write the track as a GPX 1.0 document.
 *
 * Inputs:	w	- Destination.
 *
 *		t	- Track, in the order the points should appear.
 *
 *		creator	- Value of the creator attribute.  May be empty.
 *
 * Description:	Always one trk with one trkseg, even with no points.
 *
 *------------------------------------------------------------------*/

func WriteGPX(w io.Writer, t *Track, creator string) error {
	var doc = gpxDoc{
		Version: "1.0",
		Creator: creator,
		Xmlns:   GPX_NAMESPACE,
		Track: gpxTrack{
			Name: t.Name,
			Segment: gpxSegment{
				Points: make([]gpxPoint, 0, len(t.Points)),
			},
		},
	}

	for _, p := range t.Points {
		doc.Track.Segment.Points = append(doc.Track.Segment.Points, gpxPoint{
			Lat:  p.Latitude.String(),
			Lon:  p.Longitude.String(),
			Ele:  p.Elevation,
			Time: FormatGPXTime(p),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	var enc = xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return nil
}

func FormatGPXTime(p TrackPoint) string {
	return gpxTime.FormatString(p.Time.UTC())
}

func mustStrftime(pattern string) *strftime.Strftime {
	var f, err = strftime.New(pattern)
	if err != nil {
		panic(err)
	}

	return f
}

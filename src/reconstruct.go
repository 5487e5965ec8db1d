package cpw2gpx

/*------------------------------------------------------------------
 *
 * Purpose:	Turn a CPW record stream into a track with absolute
 *		times and coordinates.
 *
 * Description:	Records only carry the time since the previous point,
 *		so every timestamp depends on all earlier records and
 *		the stream is processed strictly in order.
 *
 *		The session start comes from the file name when it
 *		looks like 2018-09-09-16'53'09.cpw, otherwise the
 *		current time is used.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type TrackPoint struct {
	Latitude  MicroDegrees
	Longitude MicroDegrees
	Elevation int32 /* Meters. */
	Time      time.Time
	Record    RawRecord /* What it was built from, for summaries and dumps. */
}

type Track struct {
	Name              string
	Start             time.Time
	StartFromFilename bool
	Points            []TrackPoint
}

type Converter struct {
	Now    func() time.Time // nil means time.Now
	Logger *log.Logger      // nil means discard
}

func NewTrackPoint(r RawRecord, t time.Time) TrackPoint {
	return TrackPoint{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Elevation: r.Altitude,
		Time:      t,
		Record:    r,
	}
}

/*------------------------------------------------------------------
 *
 * Function:	Convert
 *
 * Purpose:	Read every record up to the end of the session.
 *
 * Inputs:	in		- Record stream.
 *
 *		filenameHint	- Name of the input, used for the start time.
 *
 * Returns:	The track, or an error if reading failed.
 *		Running out of input, even partway through a record,
 *		is not an error.
 *
 * Description:	The last record of a session, the one with a zero
 *		first unknown byte, is still turned into a point.
 *		Only then do we stop.  Points with a bad status
 *		are kept too.
 *
 *------------------------------------------------------------------*/

func (c *Converter) Convert(in io.Reader, filenameHint string) (*Track, error) {
	var logger = c.Logger
	if logger == nil {
		logger = discardLogger()
	}

	var start, fromName = EpochFromFilename(filenameHint, c.Now)
	if fromName {
		logger.Debug("session start from file name", "file", filenameHint, "start", start)
	} else {
		logger.Info("no time in file name, using current time", "file", filenameHint, "start", start)
	}

	var track = &Track{
		Start:             start,
		StartFromFilename: fromName,
		Points:            []TrackPoint{},
	}

	var clock = NewSessionClock(start)

	var rr = NewRecordReader(in)

	for {
		var r, _, err = rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		var t = clock.Peek(r.TimeInterval)
		track.Points = append(track.Points, NewTrackPoint(r, t))
		clock.Advance(r.TimeInterval)

		// End of session.
		if r.IsSentinel() {
			logger.Debug("end of session record", "record", rr.Count()-1, "time", t)
			break
		}

		logRecord(logger, r, t)
	}

	logger.Debug("conversion finished", "records", rr.Count(), "points", len(track.Points))

	return track, nil
}

func logRecord(logger *log.Logger, r RawRecord, t time.Time) {
	logger.Debug("record",
		"lat", r.Latitude,
		"lon", r.Longitude,
		"a", r.Altitude,
		"s", r.SpeedValue(),
		"d", r.DistanceMeters(),
		"t", r.TimeIntervalSeconds(),
		"S", r.Status,
		"h", r.HeartRate,
		"T", t.Format(time.RFC3339),
		"u", r.Reserved[0],
		"bad", r.IsBad(),
	)
}

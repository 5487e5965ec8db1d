package cpw2gpx

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Summary describes a converted track.  The device's own distance is
// reported next to the great circle one since the two tend to disagree.
type Summary struct {
	Points        int
	BadPoints     int
	First         time.Time
	Last          time.Time
	Elapsed       time.Duration
	DeviceKm      float64
	GreatCircleKm float64
	MaxSpeed      float64
	MeanHeartRate float64 /* Zero readings are ignored. */
}

func Summarize(t *Track) Summary {
	var s Summary

	s.Points = len(t.Points)
	if s.Points == 0 {
		return s
	}

	s.First = t.Points[0].Time
	s.Last = t.Points[len(t.Points)-1].Time
	s.Elapsed = s.Last.Sub(s.First)

	var hrSum, hrCount int

	for i, p := range t.Points {
		var r = p.Record

		if r.IsBad() {
			s.BadPoints++
		}

		s.DeviceKm += r.DistanceMeters() / 1000

		if i > 0 {
			s.GreatCircleKm += DistanceKm(t.Points[i-1], p)
		}

		s.MaxSpeed = max(s.MaxSpeed, r.SpeedValue())

		if r.HeartRate > 0 {
			hrSum += int(r.HeartRate)
			hrCount++
		}
	}

	if hrCount > 0 {
		s.MeanHeartRate = float64(hrSum) / float64(hrCount)
	}

	return s
}

func (s Summary) Log(logger *log.Logger) {
	logger.Info("track summary",
		"points", s.Points,
		"bad", s.BadPoints,
		"elapsed", s.Elapsed,
		"device_km", fmt.Sprintf("%.3f", s.DeviceKm),
		"great_circle_km", fmt.Sprintf("%.3f", s.GreatCircleKm),
		"max_speed", s.MaxSpeed,
		"mean_hr", fmt.Sprintf("%.1f", s.MeanHeartRate),
	)
}

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "%d points, %d bad\n", s.Points, s.BadPoints)

	if s.Points == 0 {
		return
	}

	fmt.Fprintf(w, "from %s to %s (%s)\n", s.First.Format(time.RFC3339), s.Last.Format(time.RFC3339), s.Elapsed)
	fmt.Fprintf(w, "distance %.3f km by device, %.3f km great circle\n", s.DeviceKm, s.GreatCircleKm)
	fmt.Fprintf(w, "max speed %.2f, mean heart rate %.1f\n", s.MaxSpeed, s.MeanHeartRate)
}

package cpw2gpx

import (
	"path/filepath"
	"strings"
	"time"
)

// The device names its logs after the session start, e.g. 2018-09-09-16'53'09.cpw
const FilenameTimeLayout = "2006-01-02-15'04'05"

/*------------------------------------------------------------------
 *
 * Function:	EpochFromFilename
 *
 * Purpose:	Work out when a session started.
 *
 * Inputs:	name	- Input file name, any directory part is ignored.
 *
 *		now	- Clock used when the name doesn't carry a time.
 *
 * Returns:	Start time in UTC, whole seconds, and true if it came
 *		from the file name.
 *
 *------------------------------------------------------------------*/

func EpochFromFilename(name string, now func() time.Time) (time.Time, bool) {
	var base = filepath.Base(name)
	base, _, _ = strings.Cut(base, ".")

	var t, err = time.Parse(FilenameTimeLayout, base)
	if err == nil {
		return t.UTC(), true
	}

	if now == nil {
		now = time.Now
	}

	return now().UTC().Truncate(time.Second), false
}

// SessionClock accumulates elapsed time in tenths of a second since the Unix epoch.
type SessionClock struct {
	tenths int64
}

func NewSessionClock(epoch time.Time) *SessionClock {
	return &SessionClock{tenths: epoch.Unix() * 10}
}

// Peek is the time of a point interval tenths after the current clock, truncated to whole seconds.
func (c *SessionClock) Peek(interval int32) time.Time {
	return time.Unix(floorDiv(c.tenths+int64(interval), 10), 0).UTC()
}

func (c *SessionClock) Advance(interval int32) {
	c.tenths += int64(interval)
}

func (c *SessionClock) Tenths() int64 {
	return c.tenths
}

func floorDiv(a, b int64) int64 {
	var q = a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

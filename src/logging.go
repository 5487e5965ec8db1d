package cpw2gpx

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Verbosity levels, from the command line.
type verbosity int

const (
	VERBOSITY_QUIET verbosity = iota - 1
	VERBOSITY_NORMAL
	VERBOSITY_DEBUG
)

// NewLogger builds the logger every tool writes through.
// level is a charmbracelet/log level name; an unknown name means info.
func NewLogger(w io.Writer, prefix string, level string) *log.Logger {
	var lvl, err = log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: false,
	})
}

// Flags win over the configured level.
func applyVerbosity(logger *log.Logger, v verbosity) {
	switch v {
	case VERBOSITY_QUIET:
		logger.SetLevel(log.ErrorLevel)
	case VERBOSITY_DEBUG:
		logger.SetLevel(log.DebugLevel)
	case VERBOSITY_NORMAL:
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

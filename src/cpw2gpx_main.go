package cpw2gpx

/*------------------------------------------------------------------
 *
 * Purpose:   	Main program for cpw2gpx, convert a CPW track log
 *		into a GPX track.
 *
 * Usage:	cpw2gpx [options] input.cpw output.gpx
 *
 *		Either file name can be "-" for stdin / stdout.
 *		Reading stdin there is no file name to take the
 *		session start from, so the current time is used.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

var (
	ErrInputOpen  = errors.New("cannot open input")
	ErrOutputOpen = errors.New("cannot open output")
)

type Cpw2GpxOptions struct {
	Input     string
	Output    string
	TrackName string
	Creator   string
	Now       func() time.Time
	Logger    *log.Logger
}

func Cpw2GpxMain() {
	var configFile = pflag.StringP("config", "c", "", "YAML configuration file.")
	var name = pflag.StringP("name", "n", "", "Track name.  Default is the input file name without extension.")
	var creator = pflag.StringP("creator", "C", "", "GPX creator attribute.")
	var verbose = pflag.BoolP("verbose", "v", false, "Log every record.")
	var quiet = pflag.BoolP("quiet", "q", false, "Only log errors.")
	var version = pflag.Bool("version", false, "Print version and exit.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Convert a CPW track log to GPX.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.cpw output.gpx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion(os.Stdout, "cpw2gpx")
		os.Exit(0)
	}

	if len(pflag.Args()) != 2 {
		fmt.Fprintf(os.Stderr, "Exactly two arguments required (input and output) - got %q\n", pflag.Args())
		pflag.Usage()
		os.Exit(1)
	}

	var cfg, cfgErr = LoadConfig(*configFile)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", cfgErr)
		os.Exit(1)
	}

	var logger = NewLogger(os.Stderr, "cpw2gpx", cfg.LogLevel)

	switch {
	case *verbose:
		applyVerbosity(logger, VERBOSITY_DEBUG)
	case *quiet:
		applyVerbosity(logger, VERBOSITY_QUIET)
	}

	var opts = Cpw2GpxOptions{
		Input:     pflag.Arg(0),
		Output:    pflag.Arg(1),
		TrackName: IfThenElse(*name != "", *name, cfg.TrackName),
		Creator:   IfThenElse(*creator != "", *creator, cfg.Creator),
		Logger:    logger,
	}

	if err := Cpw2Gpx(opts); err != nil {
		logger.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

/*------------------------------------------------------------------
 *
 * Function:	Cpw2Gpx
 *
 * Purpose:	Do one conversion.
 *
 * Returns:	nil, or an error wrapping one of ErrInputOpen,
 *		ErrRead, ErrOutputOpen, ErrSerialization.
 *
 * Description:	The output is only created once the input has been
 *		read, so a bad input doesn't leave an empty file behind.
 *
 *------------------------------------------------------------------*/

func Cpw2Gpx(opts Cpw2GpxOptions) error {
	var logger = opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	var in io.Reader
	var hint string

	if opts.Input == "-" {
		in = os.Stdin
	} else {
		var f, err = os.Open(opts.Input)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInputOpen, err)
		}
		defer f.Close()

		in = f
		hint = opts.Input
	}

	var conv = Converter{Now: opts.Now, Logger: logger}

	var track, convErr = conv.Convert(in, hint)
	if convErr != nil {
		return fmt.Errorf("%s: %w", opts.Input, convErr)
	}

	track.Name = opts.TrackName
	if track.Name == "" && hint != "" {
		track.Name = trackNameFromFile(hint)
	}

	Summarize(track).Log(logger)

	if opts.Output == "-" {
		return WriteGPX(os.Stdout, track, opts.Creator)
	}

	var out, createErr = os.Create(opts.Output)
	if createErr != nil {
		return fmt.Errorf("%w: %w", ErrOutputOpen, createErr)
	}

	var writeErr = WriteGPX(out, track, opts.Creator)
	var closeErr = out.Close()

	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, closeErr)
	}

	logger.Info("wrote GPX", "file", opts.Output, "points", len(track.Points))

	return nil
}

func trackNameFromFile(path string) string {
	var base = filepath.Base(path)
	base, _, _ = strings.Cut(base, ".")

	return base
}

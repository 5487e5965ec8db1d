package cpw2gpx

/*------------------------------------------------------------------
 *
 * Purpose:   	Main program for cpwdump, list the records of CPW
 *		track logs in readable form.
 *
 * Usage:	cpwdump [options] file.cpw ...
 *
 * Description:	Shows what cpw2gpx would see: every record up to and
 *		including the end of session record, with the time it
 *		would be given, then a summary of the track.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

type CpwDumpOptions struct {
	Hex             bool
	Grid            bool
	TimestampFormat string
	Now             func() time.Time
}

func CpwDumpMain() {
	var configFile = pflag.StringP("config", "c", "", "YAML configuration file.")
	var hex = pflag.BoolP("hex", "x", false, "Hex dump each record.")
	var grid = pflag.BoolP("utm", "u", false, "Show UTM and MGRS for each point.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "'strftime' format for point times.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - List the records in CPW track logs.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.cpw ...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if len(pflag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "Nothing to process.\n")
		os.Exit(1)
	}

	var cfg, cfgErr = LoadConfig(*configFile)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", cfgErr)
		os.Exit(1)
	}

	var opts = CpwDumpOptions{
		Hex:             *hex,
		Grid:            *grid,
		TimestampFormat: IfThenElse(*timestampFormat != "", *timestampFormat, cfg.TimestampFormat),
	}

	for _, arg := range pflag.Args() {
		var fp, err = os.Open(arg) //nolint:gosec
		if err != nil {
			fmt.Fprintf(os.Stderr, "Can't open %s for read: %s\n", arg, err)
			os.Exit(1)
		}

		var dumpErr = CpwDump(os.Stdout, fp, arg, opts)

		fp.Close() //nolint:gosec

		if dumpErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, dumpErr)
			os.Exit(1)
		}
	}
}

func CpwDump(w io.Writer, in io.Reader, name string, opts CpwDumpOptions) error {
	var format = opts.TimestampFormat
	if format == "" {
		format = GPX_TIME_FORMAT
	}

	var tf, tfErr = strftime.New(format)
	if tfErr != nil {
		return fmt.Errorf("timestamp format %q: %w", format, tfErr)
	}

	var conv = Converter{Now: opts.Now}

	var track, err = conv.Convert(in, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: session start %s", name, tf.FormatString(track.Start))
	if !track.StartFromFilename {
		fmt.Fprintf(w, " (current time, not in file name)")
	}
	fmt.Fprintf(w, "\n")

	for i, p := range track.Points {
		var r = p.Record

		fmt.Fprintf(w, "%d: (%s %s), a=%d, s=%f, d=%f, t=%f, S=%d, h=%d T=%s, u=%d",
			i, r.Latitude, r.Longitude, r.Altitude, r.SpeedValue(), r.DistanceMeters(),
			r.TimeIntervalSeconds(), r.Status, r.HeartRate, tf.FormatString(p.Time), r.Reserved[0])

		if r.IsBad() {
			fmt.Fprintf(w, " BAD")
		}

		if r.IsSentinel() {
			fmt.Fprintf(w, " END")
		}

		fmt.Fprintf(w, "\n")

		if opts.Grid {
			fmt.Fprintf(w, "    %s\n", GridReference(p))
		}

		if opts.Hex {
			hex_dump(w, r.Encode())
		}
	}

	Summarize(track).Print(w)

	return nil
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	cpw2gpx "github.com/doismellburning/cpw2gpx/src"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cpw2gpx(t *testing.T) {
	var oldArgs = os.Args
	defer func() {
		os.Args = oldArgs
	}()

	var dir = t.TempDir()

	var first, last cpw2gpx.RawRecord
	first.Latitude, first.Longitude, first.Altitude, first.TimeInterval = 42662139, -71365553, 35, 12
	first.Reserved[0] = 0xff
	last.Latitude, last.Longitude, last.Altitude, last.TimeInterval = 42662140, -71365550, 36, 11

	var input = filepath.Join(dir, "2025-07-10-21'35'42.cpw")
	require.NoError(t, os.WriteFile(input, cpw2gpx.RecordBytes(first, last), 0o600))

	var output = filepath.Join(dir, "track.gpx")

	os.Args = []string{"cpw2gpx", "--quiet", input, output}
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)

	main()

	var data, err = os.ReadFile(output)
	require.NoError(t, err)

	var gpx = string(data)
	assert.Contains(t, gpx, `<trkpt lat="42.662139" lon="-71.365553">`)
	assert.Contains(t, gpx, "<ele>35</ele>")
	assert.Contains(t, gpx, "<time>2025-07-10T21:35:43Z</time>")
	assert.Contains(t, gpx, `<trkpt lat="42.662140" lon="-71.365550">`)
	assert.Contains(t, gpx, "<ele>36</ele>")
	assert.Contains(t, gpx, "<time>2025-07-10T21:35:44Z</time>")
}

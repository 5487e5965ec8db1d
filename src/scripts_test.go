package cpw2gpx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pflag (not unreasonably) assumes it only ever gets called once. But lots of
// test infrastructure was built around "call this command then this command".
// Running it in Go tests (for coverage analysis and convenience etc.) means
// doing some slight bodges.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func Test_Cpw2GpxMain(t *testing.T) {
	var input = writeInput(t, testFileName, RecordBytes(midRecord(50), midRecord(30), endRecord(20), midRecord(10)))
	var output = filepath.Join(t.TempDir(), "out.gpx")

	setupPflag([]string{"cpw2gpx", "-q", "-C", "tester", input, output})
	Cpw2GpxMain()

	var data, err = os.ReadFile(output)
	require.NoError(t, err)

	var gpx = string(data)
	assert.Contains(t, gpx, `creator="tester"`)
	assert.Contains(t, gpx, "<name>2018-09-09-16&#39;53&#39;09</name>")
	assert.Equal(t, 3, strings.Count(gpx, "<trkpt "))
	assert.Contains(t, gpx, "<time>2018-09-09T16:53:19Z</time>")
}

func Test_Cpw2GpxMainConfigAndName(t *testing.T) {
	var input = writeInput(t, testFileName, RecordBytes(endRecord(10)))
	var output = filepath.Join(t.TempDir(), "out.gpx")
	var config = writeConfig(t, "creator: from config\ntrack_name: config name\nlog_level: error\n")

	setupPflag([]string{"cpw2gpx", "--config", config, "--name", "flag name", input, output})
	Cpw2GpxMain()

	var data, err = os.ReadFile(output)
	require.NoError(t, err)

	assert.Contains(t, string(data), `creator="from config"`)
	assert.Contains(t, string(data), "<name>flag name</name>")
}

func Test_Cpw2GpxInputOutputAreSeparate(t *testing.T) {
	var data = RecordBytes(midRecord(10))
	var input = writeInput(t, testFileName, data)
	var output = filepath.Join(t.TempDir(), "out.gpx")

	require.NoError(t, Cpw2Gpx(Cpw2GpxOptions{Input: input, Output: output}))

	var after, err = os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, data, after, "input must not be overwritten")
}

func Test_Cpw2GpxEmptyInput(t *testing.T) {
	var input = writeInput(t, "track.bin", nil)
	var output = filepath.Join(t.TempDir(), "out.gpx")

	require.NoError(t, Cpw2Gpx(Cpw2GpxOptions{Input: input, Output: output, Now: fixedClock}))

	var data, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<trkseg></trkseg>")
	assert.Contains(t, string(data), "<name>track</name>")
}

func Test_Cpw2GpxStdout(t *testing.T) {
	var input = writeInput(t, testFileName, RecordBytes(midRecord(50)))

	AssertOutputContains(t, func() {
		assert.NoError(t, Cpw2Gpx(Cpw2GpxOptions{Input: input, Output: "-"}))
	}, "<time>2018-09-09T16:53:14Z</time>")
}

func Test_PrintVersion(t *testing.T) {
	var buf bytes.Buffer

	printVersion(&buf, "cpw2gpx")

	assert.True(t, strings.HasPrefix(buf.String(), "cpw2gpx - Version "+Version()+" (revision "))
}

func Test_Cpw2GpxErrors(t *testing.T) {
	var dir = t.TempDir()
	var input = writeInput(t, testFileName, RecordBytes(midRecord(10)))

	var err = Cpw2Gpx(Cpw2GpxOptions{Input: filepath.Join(dir, "missing.cpw"), Output: filepath.Join(dir, "out.gpx")})
	assert.ErrorIs(t, err, ErrInputOpen)
	assert.NoFileExists(t, filepath.Join(dir, "out.gpx"))

	err = Cpw2Gpx(Cpw2GpxOptions{Input: input, Output: filepath.Join(dir, "no", "such", "dir.gpx")})
	assert.ErrorIs(t, err, ErrOutputOpen)
}

func Test_Cpw2GpxLogsRecords(t *testing.T) {
	var input = writeInput(t, testFileName, RecordBytes(midRecord(50), endRecord(10)))
	var output = filepath.Join(t.TempDir(), "out.gpx")

	var buf bytes.Buffer

	require.NoError(t, Cpw2Gpx(Cpw2GpxOptions{Input: input, Output: output, Logger: NewLogger(&buf, "cpw2gpx", "debug")}))

	assert.Contains(t, buf.String(), "end of session record")
	assert.Contains(t, buf.String(), "track summary")
	assert.Contains(t, buf.String(), "wrote GPX")
}

func Test_CpwDumpMain(t *testing.T) {
	var input = writeInput(t, testFileName, RecordBytes(midRecord(50), endRecord(30)))

	setupPflag([]string{"cpwdump", "-x", "-T", "%H:%M:%S", input})

	var out = CaptureOutput(t, CpwDumpMain)

	assert.Contains(t, out, "session start 16:53:09\n")
	assert.Contains(t, out, "0: (45.234567 -71.365553), a=120, s=0.000000, d=0.000000, t=5.000000, S=0, h=0 T=16:53:14, u=1\n")
	assert.Contains(t, out, "1: (45.234567 -71.365553), a=120, s=0.000000, d=0.000000, t=3.000000, S=0, h=0 T=16:53:17, u=0 END\n")
	assert.Contains(t, out, "  000:  87 39 b2 02")
	assert.Contains(t, out, "2 points, 0 bad\n")
}

func Test_CpwDump(t *testing.T) {
	var bad = midRecord(10)
	bad.Status = 2

	var buf bytes.Buffer

	var err = CpwDump(&buf, bytes.NewReader(RecordBytes(bad)), "track.bin", CpwDumpOptions{Grid: true, Now: fixedClock})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(current time, not in file name)")
	assert.Contains(t, buf.String(), "T=2024-03-01T12:30:46Z, u=1 BAD\n")
	assert.Contains(t, buf.String(), "    utm=19N ")
	assert.Contains(t, buf.String(), "1 points, 1 bad\n")
}

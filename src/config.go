package cpw2gpx

/*------------------------------------------------------------------
 *
 * Purpose:   	Read configuration information from a file.
 *
 * Description:	Everything here can also be given on the command line,
 *		which takes priority.  The file is optional.
 *
 *		creator: cpw2gpx
 *		track_name: Morning ride
 *		log_level: debug
 *		timestamp_format: "%H:%M:%S"
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Creator         string `yaml:"creator"`
	TrackName       string `yaml:"track_name"`
	LogLevel        string `yaml:"log_level"`
	TimestampFormat string `yaml:"timestamp_format"` /* strftime, for cpwdump. */
}

func DefaultConfig() Config {
	return Config{
		Creator:         "cpw2gpx " + Version(),
		LogLevel:        "info",
		TimestampFormat: GPX_TIME_FORMAT,
	}
}

// LoadConfig reads path over the defaults.  An empty path just returns the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var data, err = os.ReadFile(path) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config %s: log_level %q: %w", path, cfg.LogLevel, err)
	}

	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = GPX_TIME_FORMAT
	}

	if _, err := strftime.New(cfg.TimestampFormat); err != nil {
		return Config{}, fmt.Errorf("config %s: timestamp_format %q: %w", path, cfg.TimestampFormat, err)
	}

	return cfg, nil
}

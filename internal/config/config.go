package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// Session defaults
	DefaultDir       = "."
	DefaultPosition  = "position.csv"
	DefaultTagCount  = 2    // Tags in the room; only A and B are analyzed
	DefaultThreshold = 1.5  // Contact distance in meters
	DefaultInterval  = 0.1  // Sampling interval in seconds
	DefaultDetect    = "scan"
	DefaultFormat    = "text"
	DefaultLogLevel  = "info"

	// Plot window in meters
	DefaultPlotMin = 0.0
	DefaultPlotMax = 10.0

	// Visualizer
	TargetFPS    = 30  // Target frames per second
	ReplayStep   = 1   // Timestamps advanced per frame during replay
	TrailLength  = 25  // Positions kept behind the replay cursor
	GridSpacing  = 1.0 // Grid dot spacing in meters
	SVGSize      = 800 // SVG canvas edge in pixels
	SVGMargin    = 60  // SVG margin in pixels
	EnvPrefix    = "TAGCONTACT"
	ConfigFormat = "yaml"

	// App
	AppName    = "TAG-CONTACT"
	AppVersion = "1.0"
)

// Config carries every tunable of an analysis run.
type Config struct {
	Dir       string  `mapstructure:"dir"`
	TagA      string  `mapstructure:"tag-a"`
	TagB      string  `mapstructure:"tag-b"`
	Position  string  `mapstructure:"position"`
	Tags      int     `mapstructure:"tags"`
	Threshold float64 `mapstructure:"threshold"`
	Interval  float64 `mapstructure:"interval"`
	Detect    string  `mapstructure:"detect"`
	PlotMin   float64 `mapstructure:"plot-min"`
	PlotMax   float64 `mapstructure:"plot-max"`
	SVG       string  `mapstructure:"svg"`
	Format    string  `mapstructure:"format"`
	NoUI      bool    `mapstructure:"no-ui"`
	LogLevel  string  `mapstructure:"log-level"`
}

// New returns a viper instance with defaults and environment binding set up.
// Keys use the same dashed names as the command line flags.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("tag-a", "")
	v.SetDefault("tag-b", "")
	v.SetDefault("position", DefaultPosition)
	v.SetDefault("tags", DefaultTagCount)
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("detect", DefaultDetect)
	v.SetDefault("plot-min", DefaultPlotMin)
	v.SetDefault("plot-max", DefaultPlotMax)
	v.SetDefault("svg", "")
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("no-ui", false)
	v.SetDefault("log-level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes the merged settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType(ConfigFormat)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	if c.Tags < 2 {
		return errors.Errorf("tag count must be at least 2, got %d", c.Tags)
	}
	if c.Threshold <= 0 {
		return errors.Errorf("threshold must be positive, got %g", c.Threshold)
	}
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %g", c.Interval)
	}
	switch c.Detect {
	case "scan", "ratio":
	default:
		return errors.Errorf("unknown detect mode %q (want scan or ratio)", c.Detect)
	}
	switch c.Format {
	case "text", "yaml":
	default:
		return errors.Errorf("unknown format %q (want text or yaml)", c.Format)
	}
	if c.PlotMax <= c.PlotMin {
		return errors.Errorf("plot window is empty: [%g, %g]", c.PlotMin, c.PlotMax)
	}
	return nil
}

// PositionPath resolves the position file against Dir unless it is absolute.
func (c *Config) PositionPath() string {
	return c.resolve(c.Position)
}

// TagOverride returns the explicit path configured for a tag, if any.
func (c *Config) TagOverride(name string) string {
	switch name {
	case "A":
		return c.resolve(c.TagA)
	case "B":
		return c.resolve(c.TagB)
	}
	return ""
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

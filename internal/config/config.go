package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/spiral"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// HUD layout
	HUDMarginX     = 12
	HUDMarginY     = 12
	HUDLineHeight  = 16
	LevelBarWidth  = 120
	LevelBarHeight = 6

	// Terminal cells are roughly twice as tall as they are wide.
	CellWidth  = 8
	CellHeight = 16

	EnvPrefix = "SPIRAL"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

type Config struct {
	Backend string `mapstructure:"backend"`
	Title   string `mapstructure:"title"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`

	Family          spiral.Family `mapstructure:"family"`
	Scale           float64       `mapstructure:"scale"`
	Growth          float64       `mapstructure:"growth"`
	Points          int           `mapstructure:"points"`
	AngularStep     float64       `mapstructure:"theta"`
	RefreshInterval time.Duration `mapstructure:"refresh"`
	StepDegrees     float64       `mapstructure:"step"`
	PointRadius     float64       `mapstructure:"point_radius"`
	MaxPoints       int           `mapstructure:"max_points"`

	Chime       bool    `mapstructure:"chime"`
	ChimeVolume float64 `mapstructure:"chime_volume"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Params converts the configured start-up values to animation parameters.
func (c Config) Params() anim.Params {
	return anim.Params{
		Family:          c.Family,
		Scale:           c.Scale,
		Growth:          c.Growth,
		AngularStep:     c.AngularStep,
		PointCount:      c.Points,
		RefreshInterval: c.RefreshInterval,
	}
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", c.RefreshInterval)
	}
	if c.Points < 0 || c.Points > c.MaxPoints {
		return fmt.Errorf("points must be within [0, %d], got %d", c.MaxPoints, c.Points)
	}
	if c.ChimeVolume > 0 {
		return errors.New("chime volume is a gain in octaves and must be <= 0")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := anim.DefaultParams()
	v.SetDefault("backend", BackendWindow)
	v.SetDefault("title", "Spirals - arrows: adjust, tab: select, enter: type value, f: family, s: snapshot, esc/q: quit")
	v.SetDefault("width", WindowWidth)
	v.SetDefault("height", WindowHeight)
	v.SetDefault("family", defaults.Family.String())
	v.SetDefault("scale", defaults.Scale)
	v.SetDefault("growth", defaults.Growth)
	v.SetDefault("points", defaults.PointCount)
	v.SetDefault("theta", defaults.AngularStep)
	v.SetDefault("refresh", defaults.RefreshInterval)
	v.SetDefault("step", anim.DefaultStepDegrees)
	v.SetDefault("point_radius", spiral.PointRadius)
	v.SetDefault("max_points", anim.DefaultMaxPoints)
	v.SetDefault("chime", false)
	v.SetDefault("chime_volume", -2.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// AddFlags registers the flags Load binds.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "path to config file (toml, yaml or json)")
	cmd.PersistentFlags().StringP("backend", "", BackendWindow, "render backend: window or terminal")
	cmd.PersistentFlags().IntP("width", "", WindowWidth, "drawing surface width in pixels")
	cmd.PersistentFlags().IntP("height", "", WindowHeight, "drawing surface height in pixels")
	cmd.PersistentFlags().StringP("family", "f", "archimedean", "spiral family: archimedean, hyperbolic or logarithmic")
	cmd.PersistentFlags().Float64P("scale", "a", 3, "growth factor a")
	cmd.PersistentFlags().Float64P("growth", "b", 1, "secondary factor b")
	cmd.PersistentFlags().IntP("points", "n", 500, "number of points")
	cmd.PersistentFlags().Float64P("theta", "t", 1, "angular step in radians")
	cmd.PersistentFlags().DurationP("refresh", "r", 70*time.Millisecond, "animation tick interval")
	cmd.PersistentFlags().Float64P("step", "", anim.DefaultStepDegrees, "rotation per tick in degrees")
	cmd.PersistentFlags().BoolP("chime", "", false, "play a short tone on every restart")
	cmd.PersistentFlags().StringP("log_level", "", "info", "log level: trace, debug, info, warn, error or none")
	cmd.PersistentFlags().StringP("log_file", "", "", "optional log file, logs go to stdout otherwise")
}

var boundFlags = []string{
	"backend", "width", "height", "family", "scale", "growth", "points",
	"theta", "refresh", "step", "chime", "log_level", "log_file",
}

// Load builds the configuration from defaults, an optional file, SPIRAL_*
// environment variables and cmd's flags, in increasing priority.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, name := range boundFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				_ = v.BindPFlag(name, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return Config{}, fmt.Errorf("config file %s not found: %w", configFile, err)
			}
			return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}

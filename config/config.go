// Package config loads sidewalk settings from defaults, an optional config
// file and SIDEWALK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sidewalk/logutil"
	"github.com/katalvlaran/sidewalk/raster"
	"github.com/katalvlaran/sidewalk/render"
	"github.com/katalvlaran/sidewalk/route"
)

// EnvPrefix is prepended to every environment override, e.g.
// SIDEWALK_ROUTE_CROSSING_SLACK.
const EnvPrefix = "SIDEWALK"

// FileName is the config file looked up in the working directory when no
// explicit path is given (sidewalk.yaml, sidewalk.toml, sidewalk.json).
const FileName = "sidewalk"

// Config is the complete sidewalk configuration.
type Config struct {
	Route   route.Config   `mapstructure:"route" json:"route" yaml:"route"`
	Raster  raster.Options `mapstructure:"raster" json:"raster" yaml:"raster"`
	Render  render.Options `mapstructure:"render" json:"render" yaml:"render"`
	Logging LoggingConfig  `mapstructure:"logging" json:"logging" yaml:"logging"`
	Batch   BatchConfig    `mapstructure:"batch" json:"batch" yaml:"batch"`

	// File is the config file that was read, empty when defaults were used.
	File string `mapstructure:"-" json:"-" yaml:"-"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// BatchConfig tunes the batch command.
type BatchConfig struct {
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Route:   route.DefaultConfig(),
		Raster:  raster.DefaultOptions(),
		Render:  render.DefaultOptions(),
		Logging: LoggingConfig{Level: "info", Format: logutil.FormatText},
		Batch:   BatchConfig{Workers: 4},
	}
}

// Load reads the configuration. With an empty path it looks for
// sidewalk.{yaml,toml,json} in the working directory and falls back to
// defaults when there is none; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("route.surface_label", d.Route.SurfaceLabel)
	v.SetDefault("route.background_label", d.Route.BackgroundLabel)
	v.SetDefault("route.length_weight", d.Route.LengthWeight)
	v.SetDefault("route.crossing_slack", d.Route.CrossingSlack)
	v.SetDefault("route.max_expansions", d.Route.MaxExpansions)
	v.SetDefault("route.snap_max_steps", d.Route.SnapMaxSteps)

	v.SetDefault("raster.threshold", d.Raster.Threshold)
	v.SetDefault("raster.crop_bottom", d.Raster.CropBottom)
	v.SetDefault("raster.surface_label", d.Raster.SurfaceLabel)
	v.SetDefault("raster.background_label", d.Raster.BackgroundLabel)
	v.SetDefault("raster.marker_threshold", d.Raster.MarkerThreshold)
	v.SetDefault("raster.max_area", d.Raster.MaxArea)

	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.line_width", d.Render.LineWidth)
	v.SetDefault("render.waypoints", d.Render.Waypoints)
	v.SetDefault("render.title", d.Render.Title)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("batch.workers", d.Batch.Workers)
}

// Validate checks every section and the agreement between them.
func (c *Config) Validate() error {
	if err := c.Route.Validate(); err != nil {
		return &ConfigError{Field: "route", Message: err.Error(), Err: err}
	}
	if err := c.Raster.Validate(); err != nil {
		return &ConfigError{Field: "raster", Message: err.Error(), Err: err}
	}
	if c.Raster.SurfaceLabel != c.Route.SurfaceLabel {
		return &ConfigError{Field: "raster.surface_label", Message: fmt.Sprintf(
			"%d does not match route.surface_label %d", c.Raster.SurfaceLabel, c.Route.SurfaceLabel)}
	}
	if c.Raster.BackgroundLabel != c.Route.BackgroundLabel {
		return &ConfigError{Field: "raster.background_label", Message: fmt.Sprintf(
			"%d does not match route.background_label %d", c.Raster.BackgroundLabel, c.Route.BackgroundLabel)}
	}
	if c.Render.Width < 0 || c.Render.LineWidth < 0 {
		return &ConfigError{Field: "render", Message: "width and line_width must be non-negative"}
	}
	if _, err := logutil.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error(), Err: err}
	}
	if !logutil.ValidFormat(c.Logging.Format) {
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	if c.Batch.Workers < 1 {
		return &ConfigError{Field: "batch.workers", Message: "must be at least 1"}
	}

	return nil
}

// Logger builds the logger described by the logging section.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := logutil.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, &ConfigError{Field: "logging.level", Message: err.Error(), Err: err}
	}

	return logutil.New(w, level, c.Logging.Format), nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func (e *ConfigError) Unwrap() error { return e.Err }

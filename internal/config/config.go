package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from SVGSCENE_* environment variables.
type Config struct {
	Addr         string  `envconfig:"ADDR" default:":8080"`
	ErrorMode    string  `envconfig:"ERROR_MODE" default:"warn"`
	StrokeWidth  float64 `envconfig:"STROKE_WIDTH" default:"1"` // 0 disables strokes
	Background   string  `envconfig:"BACKGROUND" default:"none"`
	MaxBodyBytes int64   `envconfig:"MAX_BODY_BYTES" default:"10485760"`
	MaxPixels    int64   `envconfig:"MAX_PIXELS" default:"16777216"` // raster canvas bound, width * height
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SVGSCENE", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields which are parsed lazily.
func (cfg *Config) Validate() error {
	if _, err := cfg.Mode(); err != nil {
		return err
	}
	if _, err := cfg.BackgroundColor(); err != nil {
		return err
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	if cfg.StrokeWidth < 0 {
		return fmt.Errorf("invalid stroke width %g", cfg.StrokeWidth)
	}
	if cfg.MaxPixels <= 0 {
		return fmt.Errorf("invalid max pixels %d", cfg.MaxPixels)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body size %d", cfg.MaxBodyBytes)
	}
	return nil
}

func (cfg *Config) Mode() (svgscene.ErrorMode, error) {
	return svgscene.ParseErrorMode(cfg.ErrorMode)
}

// BackgroundColor returns the transparent color for an empty value.
func (cfg *Config) BackgroundColor() (color.RGBA, error) {
	if strings.TrimSpace(cfg.Background) == "" {
		return color.RGBA{}, nil
	}
	return svgscene.ParseColor(cfg.Background)
}

func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}

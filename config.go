package pinchzoom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	ErrInvalidZoomRange = errors.New("invalid zoom range")
	ErrInvalidSize      = errors.New("invalid size")
)

// ConfigError describes a configuration problem with the offending field.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config holds the host-supplied settings of a viewport. The core only reads
// it; changes go through Zoomer.SetConfig.
type Config struct {
	// MinZoomScale is the smallest zoom factor allowed after a gesture ends.
	MinZoomScale float64 `yaml:"min-zoom-scale" json:"min_zoom_scale"`
	// MaxZoomScale is the largest zoom factor allowed after a gesture ends.
	MaxZoomScale float64 `yaml:"max-zoom-scale" json:"max_zoom_scale"`
	// BoundSize is the visible container size.
	BoundSize Size `yaml:"bound-size" json:"bound_size"`
	// ContentSize is the natural size of the wrapped content at zoom 1.
	ContentSize Size `yaml:"content-size" json:"content_size"`
	// Debug paints the container red, draws a transform overlay, and enables
	// debug logging.
	Debug bool `yaml:"debug" json:"debug"`
	// ClassName is passed through to the presentation layer untouched.
	ClassName string `yaml:"class-name" json:"class_name,omitempty"`
}

// sizeYAML mirrors Size with lower-case keys for config files.
type sizeYAML struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
}

type configYAML struct {
	MinZoomScale *float64  `yaml:"min-zoom-scale"`
	MaxZoomScale *float64  `yaml:"max-zoom-scale"`
	BoundSize    *sizeYAML `yaml:"bound-size"`
	ContentSize  *sizeYAML `yaml:"content-size"`
	Debug        *bool     `yaml:"debug"`
	ClassName    *string   `yaml:"class-name"`
}

// DefaultConfig returns the default viewport configuration.
func DefaultConfig() Config {
	return Config{
		MinZoomScale: 1.0,
		MaxZoomScale: 4.0,
		BoundSize:    Size{Width: 100, Height: 100},
		ContentSize:  Size{Width: 100, Height: 100},
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if c.MinZoomScale <= 0 {
		return &ConfigError{Field: "min-zoom-scale", Message: "must be positive", Err: ErrInvalidZoomRange}
	}
	if c.MaxZoomScale < c.MinZoomScale {
		return &ConfigError{
			Field:   "max-zoom-scale",
			Message: fmt.Sprintf("%g is below min-zoom-scale %g", c.MaxZoomScale, c.MinZoomScale),
			Err:     ErrInvalidZoomRange,
		}
	}
	if c.BoundSize.Width < 0 || c.BoundSize.Height < 0 {
		return &ConfigError{Field: "bound-size", Message: "dimensions must be non-negative", Err: ErrInvalidSize}
	}
	if c.ContentSize.Width < 0 || c.ContentSize.Height < 0 {
		return &ConfigError{Field: "content-size", Message: "dimensions must be non-negative", Err: ErrInvalidSize}
	}
	return nil
}

// ParseConfig decodes YAML config data over DefaultConfig and validates it.
// Keys left out of data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw configYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, &ConfigError{Message: "malformed yaml", Err: err}
	}
	raw.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// MarshalYAML renders the config with the same keys ParseConfig reads.
func (c Config) MarshalYAML() (any, error) {
	type size struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	}
	return struct {
		MinZoomScale float64 `yaml:"min-zoom-scale"`
		MaxZoomScale float64 `yaml:"max-zoom-scale"`
		BoundSize    size    `yaml:"bound-size"`
		ContentSize  size    `yaml:"content-size"`
		Debug        bool    `yaml:"debug"`
		ClassName    string  `yaml:"class-name,omitempty"`
	}{
		MinZoomScale: c.MinZoomScale,
		MaxZoomScale: c.MaxZoomScale,
		BoundSize:    size{c.BoundSize.Width, c.BoundSize.Height},
		ContentSize:  size{c.ContentSize.Width, c.ContentSize.Height},
		Debug:        c.Debug,
		ClassName:    c.ClassName,
	}, nil
}

func (raw *configYAML) apply(cfg *Config) {
	if raw.MinZoomScale != nil {
		cfg.MinZoomScale = *raw.MinZoomScale
	}
	if raw.MaxZoomScale != nil {
		cfg.MaxZoomScale = *raw.MaxZoomScale
	}
	raw.BoundSize.apply(&cfg.BoundSize)
	raw.ContentSize.apply(&cfg.ContentSize)
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.ClassName != nil {
		cfg.ClassName = *raw.ClassName
	}
}

func (s *sizeYAML) apply(dst *Size) {
	if s == nil {
		return
	}
	if s.Width != nil {
		dst.Width = *s.Width
	}
	if s.Height != nil {
		dst.Height = *s.Height
	}
}

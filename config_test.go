package pinchzoom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinZoomScale != 1 || cfg.MaxZoomScale != 4 {
		t.Errorf("zoom range = [%v, %v], want [1, 4]", cfg.MinZoomScale, cfg.MaxZoomScale)
	}
	if cfg.BoundSize != (Size{Width: 100, Height: 100}) || cfg.ContentSize != (Size{Width: 100, Height: 100}) {
		t.Errorf("sizes = %v / %v, want 100x100", cfg.BoundSize, cfg.ContentSize)
	}
	if cfg.Debug || cfg.ClassName != "" {
		t.Error("debug and class name should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseConfigMergesDefaults(t *testing.T) {
	data := []byte(`
max-zoom-scale: 6
bound-size:
  height: 568
debug: true
class-name: seat-map
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.MinZoomScale != 1 || cfg.MaxZoomScale != 6 {
		t.Errorf("zoom range = [%v, %v], want [1, 6]", cfg.MinZoomScale, cfg.MaxZoomScale)
	}
	if cfg.BoundSize != (Size{Width: 100, Height: 568}) {
		t.Errorf("BoundSize = %v, want 100x568", cfg.BoundSize)
	}
	if !cfg.Debug || cfg.ClassName != "seat-map" {
		t.Errorf("Debug = %v ClassName = %q", cfg.Debug, cfg.ClassName)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
		want  error
	}{
		{"zero min", "min-zoom-scale: 0", "min-zoom-scale", ErrInvalidZoomRange},
		{"max below min", "min-zoom-scale: 2\nmax-zoom-scale: 1.5", "max-zoom-scale", ErrInvalidZoomRange},
		{"negative bound", "bound-size: {width: -1}", "bound-size", ErrInvalidSize},
		{"negative content", "content-size: {height: -5}", "content-size", ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("err = %v, want ConfigError for %q", err, tt.field)
			}
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("min-zoom-scale: [1, 2"))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if !strings.HasPrefix(cerr.Error(), "config error: malformed yaml") {
		t.Errorf("Error() = %q", cerr.Error())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewport.yaml")
	if err := os.WriteFile(path, []byte("min-zoom-scale: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MinZoomScale != 0.5 {
		t.Errorf("MinZoomScale = %v, want 0.5", cfg.MinZoomScale)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestConfigMarshalYAMLRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxZoomScale = 3
	cfg.BoundSize = Size{Width: 320, Height: 480}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "bound-size:") {
		t.Errorf("marshaled config missing kebab-case keys:\n%s", out)
	}
	back, err := ParseConfig(out)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if back != cfg {
		t.Errorf("roundtrip = %+v, want %+v", back, cfg)
	}
}

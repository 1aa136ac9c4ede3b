package config

import (
	"errors"
	"math"
	"testing"

	"github.com/midbel/scope/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != DefaultOutput {
		t.Errorf("Files = %v, want [%s]", cfg.Files, DefaultOutput)
	}
	if cfg.YMin != -1.1 || cfg.YMax != 1.1 {
		t.Errorf("amplitude domain = [%g, %g], want [-1.1, 1.1]", cfg.YMin, cfg.YMax)
	}
	if cfg.Title != "FM Bell Oscillator Output" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.XLabel != "Sample Number" || cfg.YLabel != "Amplitude" {
		t.Errorf("labels = %q/%q", cfg.XLabel, cfg.YLabel)
	}
	if cfg.Comment != "#" || cfg.Delimiter != "," {
		t.Errorf("comment/delimiter = %q/%q", cfg.Comment, cfg.Delimiter)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should be valid: %s", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name   string
		Change func(*Config)
	}{
		{Name: "no output", Change: func(c *Config) { c.Files = nil }},
		{Name: "bad extension", Change: func(c *Config) { c.Files = []string{"out.gif"} }},
		{Name: "empty domain", Change: func(c *Config) { c.YMin, c.YMax = 1, 1 }},
		{Name: "reversed domain", Change: func(c *Config) { c.YMin, c.YMax = 1, -1 }},
		{Name: "nan domain", Change: func(c *Config) { c.YMin = math.NaN() }},
		{Name: "infinite domain", Change: func(c *Config) { c.YMin, c.YMax = math.Inf(-1), math.Inf(1) }},
		{Name: "overflowing domain", Change: func(c *Config) { c.YMin, c.YMax = -1e308, 1e308 }},
		{Name: "zero width", Change: func(c *Config) { c.Width = 0 }},
		{Name: "zero dpi", Change: func(c *Config) { c.DPI = 0 }},
		{Name: "empty delimiter", Change: func(c *Config) { c.Delimiter = "" }},
		{Name: "bad kind", Change: func(c *Config) { c.Kind = "pie" }},
		{Name: "bad marker", Change: func(c *Config) { c.Marker = "star" }},
		{Name: "bad color", Change: func(c *Config) { c.Color = "sky" }},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.Change(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFigure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = "step"
	cfg.NoGrid = true
	cfg.YMin, cfg.YMax = -2, 2

	cfg.Markers = true

	fig, err := cfg.Figure()
	if err != nil {
		t.Fatal(err)
	}
	if fig.Kind != render.KindStep {
		t.Errorf("Kind = %s, want step", fig.Kind)
	}
	if fig.Grid {
		t.Errorf("Grid should be disabled")
	}
	if fig.YMin != -2 || fig.YMax != 2 {
		t.Errorf("amplitude domain = [%g, %g]", fig.YMin, fig.YMax)
	}
	if fig.GridOpacity != 0.3 || fig.LineWidth != 0.5 {
		t.Errorf("style = %g/%g", fig.GridOpacity, fig.LineWidth)
	}
	if !fig.Markers {
		t.Errorf("Markers should be enabled")
	}

	cfg.Kind = "pie"
	if _, err := cfg.Figure(); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid kind: got %v, want ErrInvalid", err)
	}
}

func TestParseDomain(t *testing.T) {
	fst, lst, err := ParseDomain("-1.1:1.1")
	if err != nil {
		t.Fatal(err)
	}
	if fst != -1.1 || lst != 1.1 {
		t.Errorf("got [%g, %g], want [-1.1, 1.1]", fst, lst)
	}
	fst, lst, err = ParseDomain("nan:1")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.YMin, cfg.YMax = fst, lst
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("nan:1: got %v, want ErrInvalid", err)
	}
	for _, str := range []string{"", "1", "1:2:3", "a:1", "1:b"} {
		if _, _, err := ParseDomain(str); !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: got %v, want ErrInvalid", str, err)
		}
	}
}

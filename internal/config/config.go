package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/midbel/slices"

	"github.com/midbel/scope"
	"github.com/midbel/scope/render"
)

// DefaultOutput is the file written when none is given.
const DefaultOutput = "fm_output.png"

var ErrInvalid = errors.New("invalid configuration")

// Config represents the settings of the scope command.
type Config struct {
	// Files to write the figure to. The extension selects the format.
	Files []string

	Title  string
	XLabel string
	YLabel string

	// YMin and YMax bound the amplitude axis.
	YMin float64
	YMax float64

	// Width and Height of the figure in inches.
	Width  float64
	Height float64
	DPI    int

	Kind      string
	Marker    string
	Markers   bool
	Color     string
	LineWidth float64
	NoGrid    bool

	// Comment is the marker of lines to skip, Delimiter separates fields.
	Comment   string
	Delimiter string

	Verbose bool
	NoColor bool
}

func DefaultConfig() *Config {
	fig := render.DefaultFigure()
	return &Config{
		Files:     []string{DefaultOutput},
		Title:     fig.Title,
		XLabel:    fig.XLabel,
		YLabel:    fig.YLabel,
		YMin:      fig.YMin,
		YMax:      fig.YMax,
		Width:     fig.Width,
		Height:    fig.Height,
		DPI:       fig.DPI,
		Kind:      string(fig.Kind),
		Marker:    fig.Marker,
		Color:     fig.Color,
		LineWidth: fig.LineWidth,
		Comment:   "#",
		Delimiter: ",",
	}
}

func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("%w: no output file", ErrInvalid)
	}
	for _, f := range c.Files {
		if _, err := render.FormatFromPath(f); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if !isFinite(c.YMin) || !isFinite(c.YMax) || !isFinite(c.YMax-c.YMin) {
		return fmt.Errorf("%w: amplitude domain [%g, %g] is not finite", ErrInvalid, c.YMin, c.YMax)
	}
	if c.YMin >= c.YMax {
		return fmt.Errorf("%w: empty amplitude domain [%g, %g]", ErrInvalid, c.YMin, c.YMax)
	}
	if c.Width <= 0 || c.Height <= 0 || c.DPI <= 0 {
		return fmt.Errorf("%w: figure dimension should be positive", ErrInvalid)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("%w: empty delimiter", ErrInvalid)
	}
	if _, err := render.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := scope.Shape(c.Marker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := scope.ResolveColor(c.Color); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Figure validates the configuration and builds the figure it describes.
func (c *Config) Figure() (render.Figure, error) {
	if err := c.Validate(); err != nil {
		return render.Figure{}, err
	}
	kind, err := render.ParseKind(c.Kind)
	if err != nil {
		return render.Figure{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	fig := render.DefaultFigure()
	fig.Title = c.Title
	fig.XLabel = c.XLabel
	fig.YLabel = c.YLabel
	fig.YMin = c.YMin
	fig.YMax = c.YMax
	fig.Width = c.Width
	fig.Height = c.Height
	fig.DPI = c.DPI
	fig.Kind = kind
	fig.Marker = c.Marker
	fig.Markers = c.Markers
	fig.Color = c.Color
	fig.LineWidth = c.LineWidth
	fig.Grid = !c.NoGrid
	return fig, nil
}

// ParseDomain reads a "from:to" pair of numbers.
func ParseDomain(str string) (float64, float64, error) {
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return 0, 0, fmt.Errorf("%w: invalid number of values given for domain", ErrInvalid)
	}
	fn, err := strconv.ParseFloat(strings.TrimSpace(slices.Fst(vs)), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	tn, err := strconv.ParseFloat(strings.TrimSpace(slices.Lst(vs)), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return fn, tn, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Package render lays sample points out on a fixed-style figure and writes
// it in the format asked by the output file name.
package render

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/midbel/scope/sample"
)

var (
	ErrFormat = errors.New("unsupported output format")
	ErrNoData = errors.New("no data to plot")
)

type Kind string

const (
	KindLine    Kind = "line"
	KindStep    Kind = "step"
	KindScatter Kind = "scatter"
)

func ParseKind(str string) (Kind, error) {
	switch k := Kind(strings.ToLower(str)); k {
	case "", KindLine:
		return KindLine, nil
	case KindStep, KindScatter:
		return k, nil
	default:
		return "", fmt.Errorf("%s: unrecognized chart type", str)
	}
}

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatTIFF Format = "tif"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
)

func FormatFromPath(file string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	switch ext {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "pdf":
		return FormatPDF, nil
	case "eps":
		return FormatEPS, nil
	default:
		return "", fmt.Errorf("%s: %w", file, ErrFormat)
	}
}

// Figure holds the layout shared by every backend. Width and Height are in
// inches, DPI converts them to pixels for raster and SVG outputs. Markers
// draws the Marker shape on every point of line charts, scatter charts always
// use it.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	YMin float64
	YMax float64

	Width  float64
	Height float64
	DPI    int

	Kind        Kind
	Marker      string
	Markers     bool
	Color       string
	LineWidth   float64
	Grid        bool
	GridOpacity float64
}

func DefaultFigure() Figure {
	return Figure{
		Title:       "FM Bell Oscillator Output",
		XLabel:      "Sample Number",
		YLabel:      "Amplitude",
		YMin:        -1.1,
		YMax:        1.1,
		Width:       12,
		Height:      6,
		DPI:         100,
		Kind:        KindLine,
		Marker:      "circle",
		Color:       "blue",
		LineWidth:   0.5,
		Grid:        true,
		GridOpacity: 0.3,
	}
}

func (f Figure) pixels() (float64, float64) {
	dpi := float64(f.DPI)
	return f.Width * dpi, f.Height * dpi
}

// xDomain spans the sample indexes found in points. A single index is padded
// by one sample on each side.
func xDomain(points []sample.Point) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		x := float64(pt.Index)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

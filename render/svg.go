package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/scope"
	"github.com/midbel/scope/sample"
)

const (
	xTicks = 9
	yTicks = 9
)

var defaultPad = scope.Padding{
	Top:    60,
	Right:  40,
	Bottom: 70,
	Left:   90,
}

// Vector writes the figure as an SVG document.
type Vector struct{}

func (Vector) Render(w io.Writer, fig Figure, points []sample.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	color, err := scope.ResolveColor(fig.Color)
	if err != nil {
		return err
	}
	width, height := fig.pixels()
	ch := scope.Chart{
		Title:      fig.Title,
		Width:      width,
		Height:     height,
		Background: "white",
		Padding:    defaultPad,
	}

	var (
		xmin, xmax = xDomain(points)
		xscale     = scope.NumberScaler(scope.NumberDomain(xmin, xmax), scope.NewRange(0, ch.DrawingWidth()))
		yscale     = scope.NumberScaler(scope.NumberDomain(fig.YMax, fig.YMin), scope.NewRange(0, ch.DrawingHeight()))
	)
	ch.Bottom = getAxis(fig, fig.XLabel, xscale, scope.Ticks(xmin, xmax, xTicks), scope.OrientBottom)
	ch.Left = getAxis(fig, fig.YLabel, yscale, scope.Ticks(fig.YMin, fig.YMax, yTicks), scope.OrientLeft)
	ch.Top = frameAxis(xscale, scope.OrientTop)
	ch.Right = frameAxis(yscale, scope.OrientRight)

	rdr, err := vectorRenderer(fig, color)
	if err != nil {
		return err
	}
	ser := scope.Serie{
		Title:    "samples",
		Points:   chartPoints(points),
		X:        xscale,
		Y:        yscale,
		Renderer: rdr,
	}
	return ch.Render(w, ser)
}

func getAxis(fig Figure, label string, scale scope.Scaler[float64], ticks []float64, orient scope.Orientation) scope.Axis {
	prec := scope.Precision(ticks)
	return scope.NumberAxis{
		Label:          label,
		Orientation:    orient,
		Scaler:         scale,
		Domain:         ticks,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithGrid:       fig.Grid,
		GridOpacity:    fig.GridOpacity,
		Format: func(f float64) string {
			return strconv.FormatFloat(f, 'f', prec, 64)
		},
	}
}

// frameAxis closes the drawing area with a bare axis line.
func frameAxis(scale scope.Scaler[float64], orient scope.Orientation) scope.Axis {
	return scope.NumberAxis{
		Orientation: orient,
		Scaler:      scale,
	}
}

func vectorRenderer(fig Figure, color string) (scope.Renderer, error) {
	var rdr scope.Renderer
	switch fig.Kind {
	case KindLine, "":
		line := scope.LinearRenderer{
			Color: color,
			Width: fig.LineWidth,
			Clip:  true,
		}
		if fig.Markers {
			shape, err := scope.Shape(fig.Marker)
			if err != nil {
				return nil, err
			}
			line.Point = shape
		}
		rdr = line
	case KindStep:
		rdr = scope.StepRenderer{
			Color: color,
			Width: fig.LineWidth,
		}
	case KindScatter:
		shape, err := scope.Shape(fig.Marker)
		if err != nil {
			return nil, err
		}
		rdr = scope.PointRenderer{
			Color: color,
			Point: shape,
		}
	default:
		return nil, fmt.Errorf("%s: unrecognized chart renderer", fig.Kind)
	}
	return rdr, nil
}

func chartPoints(points []sample.Point) []scope.Point {
	all := make([]scope.Point, 0, len(points))
	for _, pt := range points {
		all = append(all, scope.NewPoint(float64(pt.Index), pt.Value))
	}
	return all
}

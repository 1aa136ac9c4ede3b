package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/midbel/scope"
	"github.com/midbel/scope/sample"
)

// Gonum renders the figure with gonum/plot. Raster formats honour the DPI of
// the figure, the other ones are written at their native resolution.
type Gonum struct {
	Format Format
}

func (g Gonum) Render(w io.Writer, fig Figure, points []sample.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	p, err := g.build(fig, points)
	if err != nil {
		return err
	}
	var (
		width  = vg.Length(fig.Width) * vg.Inch
		height = vg.Length(fig.Height) * vg.Inch
	)
	switch g.Format {
	case FormatPNG, FormatJPEG, FormatTIFF:
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(fig.DPI))
		p.Draw(draw.New(c))
		return writeRaster(w, g.Format, c)
	case FormatPDF, FormatEPS:
		wt, err := p.WriterTo(width, height, string(g.Format))
		if err != nil {
			return err
		}
		_, err = wt.WriteTo(w)
		return err
	default:
		return fmt.Errorf("%s: %w", g.Format, ErrFormat)
	}
}

func (g Gonum) build(fig Figure, points []sample.Point) (*plot.Plot, error) {
	fg, err := scope.ParseColor(fig.Color)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel

	if fig.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = gridColor(fig.GridOpacity)
		grid.Horizontal.Color = gridColor(fig.GridOpacity)
		p.Add(grid)
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Index)
		xys[i].Y = pt.Value
	}
	switch fig.Kind {
	case KindLine, KindStep, "":
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = fg
		line.Width = vg.Points(fig.LineWidth)
		if fig.Kind == KindStep {
			line.StepStyle = plotter.PostStep
		}
		p.Add(line)
		if fig.Markers && fig.Kind != KindStep {
			sc, err := scatter(xys, fig.Marker, fg)
			if err != nil {
				return nil, err
			}
			p.Add(sc)
		}
	case KindScatter:
		sc, err := scatter(xys, fig.Marker, fg)
		if err != nil {
			return nil, err
		}
		p.Add(sc)
	default:
		return nil, fmt.Errorf("%s: unrecognized chart renderer", fig.Kind)
	}

	// Add widens the axes to the data, the fixed ranges are set afterwards.
	p.X.Min, p.X.Max = xDomain(points)
	p.Y.Min, p.Y.Max = fig.YMin, fig.YMax
	return p, nil
}

func scatter(xys plotter.XYs, marker string, fg color.Color) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	shape, err := glyphShape(marker)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = fg
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Shape = shape
	return sc, nil
}

func writeRaster(w io.Writer, format Format, c *vgimg.Canvas) error {
	var wt io.WriterTo
	switch format {
	case FormatPNG:
		wt = vgimg.PngCanvas{Canvas: c}
	case FormatJPEG:
		wt = vgimg.JpegCanvas{Canvas: c}
	case FormatTIFF:
		wt = vgimg.TiffCanvas{Canvas: c}
	default:
		return fmt.Errorf("%s: %w", format, ErrFormat)
	}
	_, err := wt.WriteTo(w)
	return err
}

func gridColor(opacity float64) color.Color {
	if opacity <= 0 || opacity > 1 {
		opacity = 0.3
	}
	return color.NRGBA{
		R: 0xb0,
		G: 0xb0,
		B: 0xb0,
		A: uint8(opacity * 0xff),
	}
}

func glyphShape(name string) (draw.GlyphDrawer, error) {
	switch name {
	case "", "circle":
		return draw.CircleGlyph{}, nil
	case "square":
		return draw.SquareGlyph{}, nil
	case "diamond":
		return diamondGlyph{}, nil
	default:
		return nil, fmt.Errorf("%s: unknown shape", name)
	}
}

type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var (
		r = sty.Radius
		p vg.Path
	)
	c.SetColor(sty.Color)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

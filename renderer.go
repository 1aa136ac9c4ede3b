package scope

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const defaultColour = "black"

type Renderer interface {
	Render(Serie) svg.Element
}

type PointRenderer struct {
	Color string
	Point PointFunc
}

func (r PointRenderer) Render(serie Serie) svg.Element {
	if r.Point == nil {
		r.Point = GetCircle
	}
	var (
		grp    = getBaseGroup(r.Color, "scatter")
		lo, hi = serie.Y.Bounds()
	)
	for _, pt := range serie.Points {
		if pt.Y < lo || pt.Y > hi {
			continue
		}
		var (
			x = serie.X.Scale(pt.X)
			y = serie.Y.Scale(pt.Y)
		)
		grp.Append(r.Point(svg.NewPos(x, y)))
	}
	return grp.AsElement()
}

// LinearRenderer joins consecutive points with straight segments. With Clip,
// the segments are cut where they leave the y domain of the serie so that
// nothing is drawn outside of the chart area. Point, when set, marks every
// point lying in that domain.
type LinearRenderer struct {
	Color string
	Width float64
	Clip  bool
	Point PointFunc
}

func (r LinearRenderer) Render(serie Serie) svg.Element {
	var (
		grp = getBaseGroup(r.Color, "line")
		pat = getBasePath(r.Color, r.Width)
	)
	grp.Id = serie.Title
	if len(serie.Points) == 0 {
		return grp.AsElement()
	}
	if !r.Clip {
		r.renderAll(&pat, serie)
	} else {
		r.renderClipped(&pat, serie)
	}
	grp.Append(pat.AsElement())
	if r.Point != nil {
		lo, hi := serie.Y.Bounds()
		for _, pt := range serie.Points {
			if pt.Y < lo || pt.Y > hi {
				continue
			}
			grp.Append(r.Point(scalePoint(serie, pt)))
		}
	}
	return grp.AsElement()
}

func (r LinearRenderer) renderAll(pat *svg.Path, serie Serie) {
	pat.AbsMoveTo(scalePoint(serie, slices.Fst(serie.Points)))
	for _, pt := range slices.Rest(serie.Points) {
		pat.AbsLineTo(scalePoint(serie, pt))
	}
}

func (r LinearRenderer) renderClipped(pat *svg.Path, serie Serie) {
	var (
		lo, hi = serie.Y.Bounds()
		prev   = slices.Fst(serie.Points)
		down   bool
	)
	if prev.Y >= lo && prev.Y <= hi {
		pat.AbsMoveTo(scalePoint(serie, prev))
		down = true
	}
	for _, pt := range slices.Rest(serie.Points) {
		beg, end, ok := clipSegment(prev, pt, lo, hi)
		if !ok {
			down = false
			prev = pt
			continue
		}
		if !down || beg > 0 {
			pat.AbsMoveTo(scalePoint(serie, prev.lerp(pt, beg)))
		}
		pat.AbsLineTo(scalePoint(serie, prev.lerp(pt, end)))
		down = end == 1
		prev = pt
	}
}

type StepRenderer struct {
	Color string
	Width float64
}

func (r StepRenderer) Render(serie Serie) svg.Element {
	var (
		grp = getBaseGroup(r.Color, "line", "line-step")
		pat = getBasePath(r.Color, r.Width)
	)
	grp.Id = serie.Title
	if len(serie.Points) == 0 {
		return grp.AsElement()
	}
	var (
		lo, hi = serie.Y.Bounds()
		pos    = scalePoint(serie, clampPoint(slices.Fst(serie.Points), lo, hi))
	)
	pat.AbsMoveTo(pos)
	for _, pt := range slices.Rest(serie.Points) {
		next := scalePoint(serie, clampPoint(pt, lo, hi))
		pos.X = next.X
		pat.AbsLineTo(pos)
		pat.AbsLineTo(next)
		pos = next
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// clipSegment restricts the segment going from p to q to the horizontal band
// between lo and hi. It returns the parameters of the visible part of the
// segment, 0 standing for p and 1 for q.
func clipSegment(p, q Point, lo, hi float64) (float64, float64, bool) {
	dy := q.Y - p.Y
	if dy == 0 {
		return 0, 1, p.Y >= lo && p.Y <= hi
	}
	var (
		t0 = (lo - p.Y) / dy
		t1 = (hi - p.Y) / dy
	)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	t0 = math.Max(t0, 0)
	t1 = math.Min(t1, 1)
	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

func clampPoint(pt Point, lo, hi float64) Point {
	pt.Y = math.Max(lo, math.Min(hi, pt.Y))
	return pt
}

func scalePoint(serie Serie, pt Point) svg.Pos {
	return svg.NewPos(serie.X.Scale(pt.X), serie.Y.Scale(pt.Y))
}

func getBasePath(color string, width float64) svg.Path {
	if width <= 0 {
		width = 1
	}
	if color == "" {
		color = defaultColour
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, width)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

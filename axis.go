package scope

import (
	"strconv"

	"github.com/midbel/svg"
)

const FontSize = 12.0

const gridColour = "#b0b0b0"

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

type NumberAxis struct {
	Label string
	Orientation
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithGrid       bool
	GridOpacity    float64
}

// Render draws the axis line, its ticks and label, and the grid lines
// crossing the drawing area. length is the size of the axis itself, size the
// extent of the drawing area in the other direction.
func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	g.Class = append(g.Class, "axis")

	var (
		data   = a.Domain
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	if a.WithGrid {
		g.Append(a.drawGrid(data, size))
	}
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	for _, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, FontSize*0.5, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), 0, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g.AsElement()
}

func (a NumberAxis) drawGrid(data []float64, size float64) svg.Element {
	var (
		grp svg.Group
		sk  = svg.NewStroke(gridColour, 1)
	)
	grp.Class = append(grp.Class, "grid")
	sk.Opacity = a.GridOpacity
	if sk.Opacity <= 0 {
		sk.Opacity = 0.3
	}
	for _, f := range data {
		var (
			pos  = a.Scaler.Scale(f)
			tick = lineTick(a.Orientation, pos, -size, sk)
		)
		grp.Append(tick.AsElement())
	}
	return grp.AsElement()
}

func axisLabel(orient Orientation, str string, length float64) svg.Element {
	var (
		text = svg.NewText(str)
		grp  svg.Group
		dist = FontSize * 3
	)
	text.Font = svg.NewFont(FontSize * 1.1)
	text.Anchor = "middle"
	text.Baseline = "middle"

	switch {
	case orient.Vertical() && !orient.Reverse():
		grp.Transform = svg.Translate(-dist-FontSize, length/2)
		grp.Transform.RA = -90
	case orient.Vertical() && orient.Reverse():
		grp.Transform = svg.Translate(dist+FontSize, length/2)
		grp.Transform.RA = 90
	case !orient.Vertical() && orient.Reverse():
		grp.Transform = svg.Translate(length/2, -dist)
	default:
		grp.Transform = svg.Translate(length/2, dist)
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos1.X, pos1.Y = 0, offset
		pos2.X, pos2.Y = -size, offset
	case orient.Vertical() && orient.Reverse():
		pos1.X, pos1.Y = 0, offset
		pos2.X, pos2.Y = size, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}

package scope

import (
	"github.com/midbel/svg"
)

type Serie struct {
	Title  string
	X      Scaler[float64]
	Y      Scaler[float64]
	Points []Point

	Renderer Renderer
}

func (s Serie) Render() svg.Element {
	return s.Renderer.Render(s)
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

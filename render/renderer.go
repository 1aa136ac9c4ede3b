package render

import (
	"io"

	"github.com/midbel/scope/sample"
)

type Renderer interface {
	Render(io.Writer, Figure, []sample.Point) error
}

func For(format Format) (Renderer, error) {
	switch format {
	case FormatSVG:
		return Vector{}, nil
	case FormatPNG, FormatJPEG, FormatTIFF, FormatPDF, FormatEPS:
		return Gonum{Format: format}, nil
	default:
		return nil, ErrFormat
	}
}

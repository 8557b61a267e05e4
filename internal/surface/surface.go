// Package surface defines the 2D drawing surface the particle field is painted on.
package surface

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a colour with a separate opacity in [0, 1].
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// RGBA builds a Paint from 8-bit channels, the way CSS rgba() does.
func RGBA(r, g, b uint8, alpha float64) Paint {
	return Paint{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		Alpha: alpha,
	}
}

// NRGBA converts p to a non-premultiplied 8-bit colour.
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(p.Alpha) * 255))}
}

// Stop is one colour stop of a linear gradient.
type Stop struct {
	Offset float64
	Paint  Paint
}

// Canvas is a drawing surface sized in whole pixels.
//
// Drawing composites over what is already there; only Resize clears.
type Canvas interface {
	// Size returns the current pixel dimensions.
	Size() (width, height int)
	// Resize sets the pixel dimensions and clears the surface.
	Resize(width, height int)
	// FillLinearGradient fills the whole surface with a gradient running
	// from (x0, y0) to (x1, y1).
	FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop)
	FillCircle(x, y, radius float64, p Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
}

// LerpStops returns the paint at offset t of a gradient with sorted stops.
func LerpStops(stops []Stop, t float64) Paint {
	if len(stops) == 0 {
		return Paint{}
	}
	if t <= stops[0].Offset {
		return stops[0].Paint
	}
	if last := stops[len(stops)-1]; t >= last.Offset {
		return last.Paint
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Paint
		}
		f := (t - a.Offset) / span
		return Paint{
			Color: a.Paint.Color.BlendRgb(b.Paint.Color, f),
			Alpha: a.Paint.Alpha + (b.Paint.Alpha-a.Paint.Alpha)*f,
		}
	}
	return stops[len(stops)-1].Paint
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

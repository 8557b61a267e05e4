// Package render draws the particle field and drives it frame by frame.
package render

import (
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/surface"
)

// LinkWidth is the stroke width of the lines joining nearby particles.
const LinkWidth = 0.5

// LinkPaint is the colour of the link lines at full opacity. It does not
// follow the theme.
var LinkPaint = surface.RGBA(59, 130, 246, 1)

var (
	lightBackdrop = []surface.Stop{
		{Offset: 0, Paint: surface.RGBA(255, 255, 255, 0.8)},
		{Offset: 1, Paint: surface.RGBA(220, 220, 220, 0.9)},
	}
	darkBackdrop = []surface.Stop{
		{Offset: 0, Paint: surface.RGBA(7, 7, 9, 0.8)},
		{Offset: 1, Paint: surface.RGBA(10, 10, 20, 0.9)},
	}
)

// Backdrop returns the gradient stops painted behind the particles.
func Backdrop(dark bool) []surface.Stop {
	if dark {
		return darkBackdrop
	}
	return lightBackdrop
}

// Paint draws one frame of f onto c: the diagonal backdrop gradient, every
// particle as a filled circle and a line between every pair closer than
// particles.LinkDistance. It only reads f.
func Paint(c surface.Canvas, f *particles.Field, dark bool) {
	w, h := c.Size()
	c.FillLinearGradient(0, 0, float64(w), float64(h), Backdrop(dark))

	for i := range f.Particles {
		p := &f.Particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, surface.Paint{Color: p.Color, Alpha: p.Alpha})
	}

	f.EachLink(func(a, b *particles.Particle, opacity float64) {
		c.StrokeLine(a.X, a.Y, b.X, b.Y, LinkWidth, surface.Paint{Color: LinkPaint.Color, Alpha: opacity})
	})
}

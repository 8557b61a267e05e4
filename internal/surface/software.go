package surface

import (
	"image"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Software is a Canvas rasterised on the CPU into an *image.RGBA.
type Software struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas

	width, height int
}

// NewSoftware returns a cleared software canvas of the given size.
func NewSoftware(width, height int) *Software {
	s := &Software{}
	s.Resize(width, height)
	return s
}

func (s *Software) Size() (int, int) { return s.width, s.height }

func (s *Software) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
	s.backend = softwarebackend.New(width, height)
	s.cv = canvas.New(s.backend)
}

// Image returns the pixels drawn so far. The image is owned by the canvas.
func (s *Software) Image() *image.RGBA {
	return s.backend.Image
}

func (s *Software) FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop) {
	g := s.cv.CreateLinearGradient(x0, y0, x1, y1)
	for _, st := range stops {
		g.AddColorStop(st.Offset, st.Paint.NRGBA())
	}
	s.cv.SetFillStyle(g)
	s.cv.FillRect(0, 0, float64(s.width), float64(s.height))
}

func (s *Software) FillCircle(x, y, radius float64, p Paint) {
	s.cv.BeginPath()
	s.cv.Arc(x, y, radius, 0, math.Pi*2, false)
	s.cv.SetFillStyle(p.NRGBA())
	s.cv.Fill()
}

func (s *Software) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.SetStrokeStyle(p.NRGBA())
	s.cv.SetLineWidth(width)
	s.cv.Stroke()
}

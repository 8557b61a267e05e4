package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/surface"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for untextured triangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas is a surface.Canvas backed by an offscreen ebiten image. Its
// contents persist across frames until Resize.
type Canvas struct {
	img           *ebiten.Image
	width, height int
}

// NewCanvas returns a cleared canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Image returns the offscreen image drawn into.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) Resize(width, height int) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.width, c.height = width, height
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

// FillLinearGradient covers the canvas with two triangles whose vertex
// colours are the gradient sampled at the corners. Vertex colours
// interpolate linearly, so a two-stop gradient comes out exact.
func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []surface.Stop) {
	w, h := float64(c.width), float64(c.height)
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	offsets := gradientOffsets(corners, x0, y0, x1, y1)

	vs := make([]ebiten.Vertex, 4)
	for i, pt := range corners {
		p := surface.LerpStops(stops, offsets[i])
		r, g, b := p.Color.Clamped().RGB255()
		vs[i] = ebiten.Vertex{
			DstX:   float32(pt[0]),
			DstY:   float32(pt[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 255,
			ColorG: float32(g) / 255,
			ColorB: float32(b) / 255,
			ColorA: float32(clamp01(p.Alpha)),
		}
	}
	indices := []uint16{0, 1, 2, 1, 3, 2}
	c.img.DrawTriangles(vs, indices, white(), &ebiten.DrawTrianglesOptions{})
}

func (c *Canvas) FillCircle(x, y, radius float64, p surface.Paint) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), p.NRGBA(), true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p surface.Paint) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), p.NRGBA(), true)
}

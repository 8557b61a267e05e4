package snapshot

import (
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type darkTheme bool

func (d darkTheme) Dark() bool                           { return bool(d) }
func (d darkTheme) Subscribe(func(bool)) (cancel func()) { return func() {} }

func TestRenderAndWrite(t *testing.T) {
	img, err := Render(Options{
		Width:  200,
		Height: 150,
		Frames: 5,
		Theme:  darkTheme(true),
		Rand:   rand.New(rand.NewPCG(1, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// The dark backdrop is nearly black and mostly opaque after a few frames.
	px := img.RGBAAt(0, 0)
	assert.Greater(t, px.A, uint8(200))
	assert.Less(t, px.R, uint8(30))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRenderLightBackdrop(t *testing.T) {
	img, err := Render(Options{Width: 64, Height: 64, Frames: 3, Rand: rand.New(rand.NewPCG(2, 2))})
	require.NoError(t, err)

	px := img.RGBAAt(1, 1)
	assert.Greater(t, px.R, uint8(180))
	assert.Greater(t, px.A, uint8(200))
}

func TestRenderEmptySurface(t *testing.T) {
	_, err := Render(Options{Width: 0, Height: 100})
	assert.ErrorIs(t, err, ErrNothingRendered)
}

func TestWritePNGBadPath(t *testing.T) {
	img, err := Render(Options{Width: 8, Height: 8})
	require.NoError(t, err)
	assert.Error(t, WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img))
}

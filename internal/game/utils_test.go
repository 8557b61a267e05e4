package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientOffsetsDiagonal(t *testing.T) {
	const w, h = 400.0, 300.0
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}

	got := gradientOffsets(corners, 0, 0, w, h)

	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, w*w/(w*w+h*h), got[1], 1e-12)
	assert.InDelta(t, h*h/(w*w+h*h), got[2], 1e-12)
	assert.InDelta(t, 1.0, got[3], 1e-12)
	// Opposite corners of the cross diagonal add up to the full axis.
	assert.InDelta(t, 1.0, got[1]+got[2], 1e-12)
}

func TestGradientOffsetsClampAndDegenerate(t *testing.T) {
	pts := [4][2]float64{{-50, 0}, {150, 0}, {50, 0}, {100, 0}}

	got := gradientOffsets(pts, 0, 0, 100, 0)
	assert.Equal(t, [4]float64{0, 1, 0.5, 1}, got)

	assert.Equal(t, [4]float64{}, gradientOffsets(pts, 5, 5, 5, 5))
}

func TestPageColor(t *testing.T) {
	assert.Equal(t, color.Black, pageColor(true))
	assert.Equal(t, color.White, pageColor(false))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "FPS 59.9 | particles 52 | dark | 1024x512", statusLine(59.94, 52, true, 1024, 512))
	assert.Equal(t, "FPS 0.0 | particles 0 | light | 1x1", statusLine(0, 0, false, 1, 1))
}

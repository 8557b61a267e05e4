package game

import (
	"fmt"
	"image/color"
)

// gradientOffsets projects points onto the gradient axis from (x0, y0) to
// (x1, y1) and returns their offsets clamped to [0, 1].
func gradientOffsets(pts [4][2]float64, x0, y0, x1, y1 float64) [4]float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy

	var out [4]float64
	if lenSq == 0 {
		return out
	}
	for i, pt := range pts {
		out[i] = clamp01(((pt[0]-x0)*dx + (pt[1]-y0)*dy) / lenSq)
	}
	return out
}

// pageColor is the page background the overlay sits on in window mode.
func pageColor(dark bool) color.Color {
	if dark {
		return color.Black
	}
	return color.White
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

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// statusLine formats the debug overlay text.
func statusLine(fps float64, particles int, dark bool, w, h int) string {
	return fmt.Sprintf("FPS %.1f | particles %d | %s | %dx%d", fps, particles, themeName(dark), w, h)
}

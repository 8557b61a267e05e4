// Package snapshot renders the particle field without a window and saves
// the result as a PNG.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/iburimskiy/particle-field/internal/render"
	"github.com/iburimskiy/particle-field/internal/surface"
)

// ErrNothingRendered is returned when the renderer drew no frame, for
// example because the requested surface was empty.
var ErrNothingRendered = errors.New("no frame rendered")

// Options configures a snapshot run.
type Options struct {
	Width, Height int
	Frames        int
	Theme         render.Theme
	Rand          *rand.Rand
	Logger        *slog.Logger
}

// fixedViewport never resizes.
type fixedViewport struct{ w, h int }

func (v fixedViewport) Size() (int, int)                        { return v.w, v.h }
func (v fixedViewport) OnResize(func(width, height int)) func() { return func() {} }

// Render mounts a renderer on a software canvas, runs the requested number
// of frames and returns the final pixels.
func Render(opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot size %dx%d: %w", opts.Width, opts.Height, ErrNothingRendered)
	}
	if opts.Frames < 1 {
		opts.Frames = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	canvas := surface.NewSoftware(opts.Width, opts.Height)
	var queue render.FrameQueue
	r := render.New(render.Options{
		Surface:   canvas,
		Scheduler: &queue,
		Viewport:  fixedViewport{opts.Width, opts.Height},
		Theme:     opts.Theme,
		Rand:      opts.Rand,
		Logger:    logger,
	})

	r.Mount()
	defer r.Unmount()
	for i := 0; i < opts.Frames; i++ {
		if queue.Flush() == 0 {
			break
		}
	}
	if r.Frames() == 0 {
		return nil, ErrNothingRendered
	}

	logger.Debug("snapshot rendered", "frames", r.Frames(), "particles", r.Particles(), "dark", r.Dark())
	return canvas.Image(), nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

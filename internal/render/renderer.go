package render

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/surface"
)

// Viewport reports the size of the area the surface must cover.
type Viewport interface {
	Size() (width, height int)
	OnResize(fn func(width, height int)) (cancel func())
}

// Theme reports the dark mode flag and notifies changes.
type Theme interface {
	Dark() bool
	Subscribe(fn func(dark bool)) (cancel func())
}

// State is the lifecycle state of a Renderer.
type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

// Options configures a Renderer. Surface may be nil, in which case the
// renderer never does anything.
type Options struct {
	Surface   surface.Canvas
	Scheduler Scheduler
	Viewport  Viewport
	Theme     Theme
	Rand      *rand.Rand
	Logger    *slog.Logger
}

// Renderer keeps a particle field animated on a surface between Mount and
// Unmount.
type Renderer struct {
	canvas    surface.Canvas
	scheduler Scheduler
	viewport  Viewport
	theme     Theme
	rng       *rand.Rand
	log       *slog.Logger

	mu        sync.Mutex
	state     State
	frameID   FrameID
	cancels   []func()
	dark      bool
	width     int
	height    int
	resized   bool
	field     *particles.Field
	frames    int
	fieldDark bool
}

// New returns an unmounted Renderer.
func New(opts Options) *Renderer {
	r := &Renderer{
		canvas:    opts.Surface,
		scheduler: opts.Scheduler,
		viewport:  opts.Viewport,
		theme:     opts.Theme,
		rng:       opts.Rand,
		log:       opts.Logger,
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Mount sizes the surface, builds the field, attaches the resize and theme
// listeners and requests the first frame. Without a surface, scheduler or
// viewport it does nothing. Mounting a mounted renderer is a no-op.
func (r *Renderer) Mount() {
	if r.canvas == nil || r.scheduler == nil || r.viewport == nil {
		r.log.Debug("particle field disabled: no drawing surface")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Mounted {
		return
	}

	r.width, r.height = r.viewport.Size()
	r.canvas.Resize(r.width, r.height)
	r.resized = false
	r.cancels = append(r.cancels, r.viewport.OnResize(r.onResize))

	if r.theme != nil {
		r.dark = r.theme.Dark()
		r.cancels = append(r.cancels, r.theme.Subscribe(r.onTheme))
	}

	r.rebuild()
	r.state = Mounted
	r.frameID = r.scheduler.RequestFrame(r.frame)

	r.log.Debug("particle field mounted",
		"width", r.width, "height", r.height, "dark", r.dark, "particles", r.field.Len())
}

// Unmount cancels the pending frame and detaches every listener. It is safe
// to call from any goroutine and at any time, including between frames.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Mounted {
		return
	}

	r.scheduler.CancelFrame(r.frameID)
	r.frameID = 0
	for _, cancel := range r.cancels {
		cancel()
	}
	r.cancels = nil
	r.field = nil
	r.state = Unmounted

	r.log.Debug("particle field unmounted", "frames", r.frames)
}

// State returns the lifecycle state.
func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Frames returns the number of frames drawn since the renderer was created.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Particles returns the size of the live field, or 0 when unmounted.
func (r *Renderer) Particles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.field == nil {
		return 0
	}
	return r.field.Len()
}

// Dark reports the theme flag the next frame will use.
func (r *Renderer) Dark() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dark
}

// onResize and onTheme may be called by an emission that started before
// Unmount; they ignore it.
func (r *Renderer) onResize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Mounted {
		return
	}
	r.width, r.height = width, height
	r.resized = true
}

func (r *Renderer) onTheme(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Mounted {
		return
	}
	r.dark = dark
}

// rebuild replaces the field for the current bounds and theme. Callers hold r.mu.
func (r *Renderer) rebuild() {
	r.field = particles.New(float64(r.width), float64(r.height), r.dark, r.rng)
	r.fieldDark = r.dark
}

func (r *Renderer) frame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Mounted {
		return
	}

	if r.resized {
		r.canvas.Resize(r.width, r.height)
		r.resized = false
	}
	if r.fieldDark != r.dark {
		// A fresh field starts on a fresh surface.
		r.canvas.Resize(r.width, r.height)
		r.rebuild()
		r.log.Debug("particle field rebuilt for theme change", "dark", r.dark, "particles", r.field.Len())
	}

	r.field.Advance(float64(r.width), float64(r.height))
	Paint(r.canvas, r.field, r.dark)
	r.frames++

	r.frameID = r.scheduler.RequestFrame(r.frame)
}

// Package game hosts the particle field in an Ebitengine window.
package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/event"
	"github.com/iburimskiy/particle-field/internal/render"
)

// Options configures a Game.
type Options struct {
	Config *config.Config
	Theme  render.Theme
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Game implements ebiten.Game. Every displayed frame flushes the frame
// queue, which lets the renderer paint its offscreen canvas, and then
// composites that canvas onto the screen.
type Game struct {
	cfg      *config.Config
	log      *slog.Logger
	queue    render.FrameQueue
	canvas   *Canvas
	renderer *render.Renderer
	resize   event.Hub[[2]int]

	mu            sync.Mutex
	width, height int

	mounted bool
	closing atomic.Bool
}

// NewGame builds the window host. The renderer mounts on the first update.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:    cfg,
		log:    logger,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	g.canvas = NewCanvas(g.width, g.height)
	g.renderer = render.New(render.Options{
		Surface:   g.canvas,
		Scheduler: &g.queue,
		Viewport:  g,
		Theme:     opts.Theme,
		Rand:      opts.Rand,
		Logger:    logger,
	})
	return g
}

// Size implements render.Viewport.
func (g *Game) Size() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width, g.height
}

// OnResize implements render.Viewport.
func (g *Game) OnResize(fn func(width, height int)) func() {
	return g.resize.Subscribe(func(s [2]int) { fn(s[0], s[1]) })
}

// Close unmounts the renderer and ends the run loop on the next update.
// It may be called from any goroutine.
func (g *Game) Close() {
	g.closing.Store(true)
	g.renderer.Unmount()
}

func (g *Game) Update() error {
	if g.closing.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.renderer.Unmount()
		return ebiten.Termination
	}
	if !g.mounted {
		g.renderer.Mount()
		g.mounted = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.queue.Flush()

	dark := g.renderer.Dark()
	if !g.cfg.Window.Overlay {
		screen.Fill(pageColor(dark))
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.cfg.Opacity))
	screen.DrawImage(g.canvas.Image(), op)

	if g.cfg.Debug {
		w, h := g.Size()
		ebitenutil.DebugPrintAt(screen, statusLine(ebiten.ActualFPS(), g.renderer.Particles(), dark, w, h), 12, 12)
	}
}

// Layout keeps the logical screen equal to the window size and reports
// every change to the resize listeners.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)

	g.mu.Lock()
	changed := w != g.width || h != g.height
	g.width, g.height = w, h
	g.mu.Unlock()

	if changed {
		g.resize.Emit([2]int{w, h})
	}
	return w, h
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, g *Game) error {
	win := g.cfg.Window
	ebiten.SetWindowTitle(win.Title)

	opts := &ebiten.RunGameOptions{}
	if win.Overlay {
		w, h := ebiten.Monitor().Size()
		g.mu.Lock()
		g.width, g.height = w, h
		g.mu.Unlock()

		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowPosition(0, 0)
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowMousePassthrough(true)
		opts.ScreenTransparent = true
		opts.InitUnfocused = true
		opts.SkipTaskbar = true
	} else {
		ebiten.SetWindowSize(win.Width, win.Height)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	stop := context.AfterFunc(ctx, g.Close)
	defer stop()

	g.log.Info("opening window", "overlay", win.Overlay, "opacity", g.cfg.Opacity)
	if err := ebiten.RunGameWithOptions(g, opts); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.renderer.Unmount()
	return nil
}

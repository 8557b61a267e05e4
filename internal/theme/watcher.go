// Package theme tracks the light/dark colour-scheme preference of the
// environment.
package theme

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/iburimskiy/particle-field/internal/event"
)

// Scheme is a colour-scheme preference.
type Scheme int

const (
	NoPreference Scheme = iota
	Dark
	Light
)

func (s Scheme) String() string {
	switch s {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "no-preference"
	}
}

// ParseScheme maps "dark" and "light" (any case) to their scheme and
// everything else to NoPreference.
func ParseScheme(s string) Scheme {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark
	case "light":
		return Light
	default:
		return NoPreference
	}
}

// Source provides the current preference and its changes.
type Source interface {
	// Current returns the preference right now.
	Current(ctx context.Context) (Scheme, error)
	// Watch calls fn with every new preference until ctx is done.
	Watch(ctx context.Context, fn func(Scheme)) error
}

// Watcher exposes a single "dark mode active" flag fed by a Source. Sources
// that fail leave the flag in light mode.
type Watcher struct {
	src Source
	log *slog.Logger
	hub event.Hub[bool]

	mu   sync.Mutex
	dark bool
	wg   sync.WaitGroup
}

// NewWatcher returns a Watcher for src. A nil logger means slog.Default().
func NewWatcher(src Source, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{src: src, log: logger}
}

// Start reads the current preference and keeps following it in the
// background until ctx is done. Use Wait to block until the background
// watch has returned.
func (w *Watcher) Start(ctx context.Context) {
	if w.src == nil {
		return
	}

	s, err := w.src.Current(ctx)
	if err != nil {
		w.log.Debug("colour scheme unavailable, using light mode", "err", err)
		s = NoPreference
	}
	w.set(s)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if err := w.src.Watch(ctx, w.set); err != nil && ctx.Err() == nil {
			w.log.Debug("colour scheme watch stopped", "err", err)
		}
	}()
}

// Wait blocks until the background watch started by Start has returned.
func (w *Watcher) Wait() { w.wg.Wait() }

// Dark reports whether dark mode is active.
func (w *Watcher) Dark() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark
}

// Subscribe registers fn to be called with the new flag whenever it changes.
func (w *Watcher) Subscribe(fn func(dark bool)) (cancel func()) {
	return w.hub.Subscribe(fn)
}

// Listeners returns the number of attached listeners.
func (w *Watcher) Listeners() int { return w.hub.Len() }

func (w *Watcher) set(s Scheme) {
	dark := s == Dark

	w.mu.Lock()
	changed := w.dark != dark
	w.dark = dark
	w.mu.Unlock()

	if changed {
		w.log.Debug("colour scheme changed", "scheme", s)
		w.hub.Emit(dark)
	}
}

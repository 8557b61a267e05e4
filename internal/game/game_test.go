package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/render"
	"github.com/iburimskiy/particle-field/internal/surface"
)

// newTestGame wires a Game to a recording surface so no GPU image is needed.
func newTestGame(w, h int) (*Game, *surface.Recorder) {
	rec := surface.NewRecorder(0, 0)
	g := &Game{cfg: config.Default(), width: w, height: h}
	g.renderer = render.New(render.Options{
		Surface:   rec,
		Scheduler: &g.queue,
		Viewport:  g,
	})
	return g, rec
}

func TestLayoutReportsOnlyChanges(t *testing.T) {
	g, _ := newTestGame(640, 480)

	var got [][2]int
	cancel := g.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })
	defer cancel()

	w, h := g.Layout(640, 480)
	assert.Equal(t, []int{640, 480}, []int{w, h})
	assert.Empty(t, got)

	g.Layout(800, 600)
	g.Layout(800, 600)
	w, h = g.Layout(0, -5)
	assert.Equal(t, []int{1, 1}, []int{w, h})

	assert.Equal(t, [][2]int{{800, 600}, {1, 1}}, got)
	w, h = g.Size()
	assert.Equal(t, []int{1, 1}, []int{w, h})
}

func TestUpdateMountsOnce(t *testing.T) {
	g, rec := newTestGame(300, 200)

	require.NoError(t, g.Update())
	assert.Equal(t, render.Mounted, g.renderer.State())
	assert.Equal(t, 1, g.queue.Pending())
	assert.Equal(t, 1, rec.Resizes())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, g.queue.Pending())
	assert.Equal(t, 1, rec.Resizes())
}

func TestCloseTerminates(t *testing.T) {
	g, _ := newTestGame(300, 200)
	require.NoError(t, g.Update())

	g.Close()
	assert.Equal(t, render.Unmounted, g.renderer.State())
	assert.Zero(t, g.queue.Pending())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

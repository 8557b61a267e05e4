package particles

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestCount(t *testing.T) {
	tests := []struct {
		w, h float64
		want int
	}{
		{0, 0, 0},
		{0, 800, 0},
		{99, 100, 0},
		{100, 100, 1},
		{1000, 1000, 100},
		{1920, 1080, 207},
		{1024, 512, 52},
		{375, 667, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.w, tt.h), "%vx%v", tt.w, tt.h)
		assert.Equal(t, tt.want, New(tt.w, tt.h, false, newRand()).Len(), "%vx%v", tt.w, tt.h)
	}
}

func TestNewRanges(t *testing.T) {
	f := New(1280, 720, false, newRand())
	require.Equal(t, 92, f.Len())

	for i, p := range f.Particles {
		assert.True(t, p.X >= 0 && p.X <= 1280, "particle %d x=%v", i, p.X)
		assert.True(t, p.Y >= 0 && p.Y <= 720, "particle %d y=%v", i, p.Y)
		assert.True(t, p.Radius >= 0.5 && p.Radius <= 2.5, "particle %d radius=%v", i, p.Radius)
		assert.True(t, p.Alpha >= 0.1 && p.Alpha <= 0.6, "particle %d alpha=%v", i, p.Alpha)
		assert.True(t, math.Abs(p.VX) <= 0.25, "particle %d vx=%v", i, p.VX)
		assert.True(t, math.Abs(p.VY) <= 0.25, "particle %d vy=%v", i, p.VY)
	}
}

func TestNewLightPalette(t *testing.T) {
	f := New(1000, 1000, false, newRand())
	require.Equal(t, 100, f.Len())
	assert.False(t, f.Dark())

	seen := map[string]int{}
	for _, p := range f.Particles {
		seen[p.Color.Hex()]++
	}
	for hex := range seen {
		assert.Contains(t, []string{"#0000ff", "#f1f1f1"}, hex)
	}
	// 100 fair coin flips landing all on one side would be a broken coin.
	assert.Len(t, seen, 2)
}

func TestNewDarkPalette(t *testing.T) {
	f := New(1000, 1000, true, newRand())
	require.Equal(t, 100, f.Len())
	assert.True(t, f.Dark())

	for _, p := range f.Particles {
		assert.Contains(t, []string{"#3b82f6", "#ffffff"}, p.Color.Hex())
	}
}

func TestAdvanceReflectsAfterLeaving(t *testing.T) {
	f := &Field{Particles: []Particle{
		{X: 99.9, Y: 50, VX: 0.2, VY: 0},
		{X: 0.1, Y: 0.1, VX: -0.2, VY: -0.2},
		{X: 50, Y: 50, VX: 0.1, VY: -0.1},
	}}

	f.Advance(100, 100)

	// Overshoots by one step, then turns around.
	assert.InDelta(t, 100.1, f.Particles[0].X, 1e-9)
	assert.Equal(t, -0.2, f.Particles[0].VX)
	assert.Equal(t, 0.0, f.Particles[0].VY)

	assert.InDelta(t, -0.1, f.Particles[1].X, 1e-9)
	assert.InDelta(t, -0.1, f.Particles[1].Y, 1e-9)
	assert.Equal(t, 0.2, f.Particles[1].VX)
	assert.Equal(t, 0.2, f.Particles[1].VY)

	// Inside the bounds nothing flips.
	assert.Equal(t, 0.1, f.Particles[2].VX)
	assert.Equal(t, -0.1, f.Particles[2].VY)

	f.Advance(100, 100)
	assert.InDelta(t, 99.9, f.Particles[0].X, 1e-9)
	assert.Equal(t, -0.2, f.Particles[0].VX)
}

func TestAdvanceBoundaryIsInclusive(t *testing.T) {
	f := &Field{Particles: []Particle{{X: 99.75, Y: 0.25, VX: 0.25, VY: -0.25}}}
	f.Advance(100, 100)

	// Landing exactly on the edge is still inside.
	assert.Equal(t, 100.0, f.Particles[0].X)
	assert.Equal(t, 0.0, f.Particles[0].Y)
	assert.Equal(t, 0.25, f.Particles[0].VX)
	assert.Equal(t, -0.25, f.Particles[0].VY)
}

func TestAdvanceStaysNearBounds(t *testing.T) {
	const w, h = 300.0, 200.0
	f := New(w, h, true, newRand())
	require.NotZero(t, f.Len())

	for step := 0; step < 5000; step++ {
		before := make([]Particle, f.Len())
		copy(before, f.Particles)

		f.Advance(w, h)

		for i, p := range f.Particles {
			outX := p.X < 0 || p.X > w
			outY := p.Y < 0 || p.Y > h
			assert.Equal(t, outX, p.VX == -before[i].VX && p.VX != 0, "step %d particle %d x", step, i)
			assert.Equal(t, outY, p.VY == -before[i].VY && p.VY != 0, "step %d particle %d y", step, i)
			assert.True(t, p.X >= -MaxSpeed && p.X <= w+MaxSpeed, "step %d particle %d x=%v", step, i, p.X)
			assert.True(t, p.Y >= -MaxSpeed && p.Y <= h+MaxSpeed, "step %d particle %d y=%v", step, i, p.Y)
		}
	}
}

func TestLinkOpacity(t *testing.T) {
	assert.InDelta(t, 0.15, LinkOpacity(0), 1e-12)
	assert.InDelta(t, 0.075, LinkOpacity(50), 1e-12)
	assert.Equal(t, 0.0, LinkOpacity(100))
	assert.Equal(t, 0.0, LinkOpacity(250))

	prev := LinkOpacity(0)
	for d := 0.5; d <= 100; d += 0.5 {
		cur := LinkOpacity(d)
		assert.Less(t, cur, prev, "d=%v", d)
		prev = cur
	}
}

func TestEachLink(t *testing.T) {
	f := &Field{Particles: []Particle{
		{X: 0, Y: 0},
		{X: 60, Y: 80},   // 100 from p0: not linked
		{X: 30, Y: 40},   // 50 from p0 and p1
		{X: 500, Y: 500}, // alone
	}}

	type pair struct{ a, b float64 }
	var got []pair
	var ops []float64
	f.EachLink(func(a, b *Particle, opacity float64) {
		got = append(got, pair{a.X, b.X})
		ops = append(ops, opacity)
	})

	assert.Equal(t, []pair{{0, 30}, {60, 30}}, got)
	require.Len(t, ops, 2)
	assert.InDelta(t, 0.075, ops[0], 1e-12)
	assert.InDelta(t, 0.075, ops[1], 1e-12)
}

func TestMustHex(t *testing.T) {
	assert.Equal(t, "#3b82f6", mustHex("#3b82f6").Hex())
	assert.Panics(t, func() { mustHex("blue") })
}

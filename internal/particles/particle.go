package particles

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// AreaPerParticle is the surface area (in square units) that buys one particle.
	AreaPerParticle = 10000

	// Radius is drawn from [MinRadius, MinRadius+RadiusRange), each velocity
	// component from [-MaxSpeed, MaxSpeed) and Alpha from
	// [MinAlpha, MinAlpha+AlphaRange).
	MinRadius   = 0.5
	RadiusRange = 2.0
	MaxSpeed    = 0.25
	MinAlpha    = 0.1
	AlphaRange  = 0.5

	// LinkDistance is the distance below which two particles are joined.
	LinkDistance = 100.0
	// LinkMaxOpacity is the opacity of a link between two coincident particles.
	LinkMaxOpacity = 0.15
)

// Particle is a single drifting point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
	Color  colorful.Color
}

// Field is the live particle collection for one theme.
type Field struct {
	Particles []Particle

	dark bool
}

// Count returns how many particles a width x height surface holds.
func Count(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / AreaPerParticle))
}

// New creates a field sized for width x height with the palette of the given theme.
func New(width, height float64, dark bool, rng *rand.Rand) *Field {
	pal := PaletteFor(dark)
	n := Count(width, height)

	f := &Field{
		Particles: make([]Particle, n),
		dark:      dark,
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = rng.Float64() * width
		p.Y = rng.Float64() * height
		p.Radius = rng.Float64()*RadiusRange + MinRadius

		// Fair coin between the accent and the neutral entry.
		if rng.Float64() > 0.5 {
			p.Color = pal.Accent
		} else {
			p.Color = pal.Neutral
		}

		p.VX = (rng.Float64() - 0.5) * 2 * MaxSpeed
		p.VY = (rng.Float64() - 0.5) * 2 * MaxSpeed
		p.Alpha = rng.Float64()*AlphaRange + MinAlpha
	}
	return f
}

// Dark reports which palette the field was built with.
func (f *Field) Dark() bool { return f.dark }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.Particles) }

// Advance moves every particle by its velocity. A velocity component is
// negated when its coordinate ends up outside [0, bound] after the move, so a
// particle can sit one step outside the surface before it turns back.
func (f *Field) Advance(width, height float64) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X > width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > height {
			p.VY = -p.VY
		}
	}
}

// LinkOpacity returns the opacity of a line joining two particles d apart.
// It falls linearly from LinkMaxOpacity at 0 to 0 at LinkDistance.
func LinkOpacity(d float64) float64 {
	if d >= LinkDistance {
		return 0
	}
	return LinkMaxOpacity * (1 - d/LinkDistance)
}

// EachLink calls fn for every unordered pair closer than LinkDistance, in
// index order (a before b).
func (f *Field) EachLink(fn func(a, b *Particle, opacity float64)) {
	ps := f.Particles
	for i := range ps {
		p1 := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			p2 := &ps[j]
			dx := p1.X - p2.X
			dy := p1.Y - p2.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < LinkDistance {
				fn(p1, p2, LinkOpacity(d))
			}
		}
	}
}

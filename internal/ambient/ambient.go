// Package ambient animates the faint particle field behind the wish list.
package ambient

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/wish-waves/internal/config"
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Offset float64
}

// Field is a fixed set of drifting particles that wrap at the edges.
type Field struct {
	particles []Particle
	w, h      float64
	frame     int
}

func NewField(rng *rand.Rand, w, h int) *Field {
	f := &Field{w: float64(w), h: float64(h)}
	f.particles = make([]Particle, config.ParticleCount)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      rng.Float64() * f.w,
			Y:      rng.Float64() * f.h,
			VX:     -0.3 + rng.Float64()*0.6,
			VY:     -0.3 + rng.Float64()*0.6,
			Size:   1 + rng.Float64()*2,
			Offset: rng.Float64() * 1000,
		}
	}
	return f
}

// Resize changes the wrap bounds. Particles keep their positions.
func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
}

func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Update moves every particle one tick.
func (f *Field) Update() {
	f.frame++
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X > f.w {
			p.X = 0
		}
		if p.X < 0 {
			p.X = f.w
		}
		if p.Y > f.h {
			p.Y = 0
		}
		if p.Y < 0 {
			p.Y = f.h
		}
	}
}

// Alpha is the pulsing opacity of p, between 10 and 70.
func (f *Field) Alpha(p Particle) uint8 {
	s := math.Sin(float64(f.frame)*config.PulseSpeed + p.Offset)
	return uint8(10 + (s+1)/2*60)
}

// Color is the fill color of p for the current frame.
func (f *Field) Color(p Particle) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: f.Alpha(p)}
}

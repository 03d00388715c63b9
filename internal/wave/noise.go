package wave

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise is a smooth 2D field with values in [0, 1].
type Noise interface {
	At(x, y float64) float64
}

type perlinNoise struct {
	p *perlin.Perlin
}

// NewPerlin returns classic Perlin noise rescaled to [0, 1].
func NewPerlin(seed int64) Noise {
	return perlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (n perlinNoise) At(x, y float64) float64 {
	return clamp01((n.p.Noise2D(x, y) + 1) / 2)
}

type simplexNoise struct {
	s opensimplex.Noise
}

// NewSimplex returns OpenSimplex noise rescaled to [0, 1].
func NewSimplex(seed int64) Noise {
	return simplexNoise{s: opensimplex.New(seed)}
}

func (n simplexNoise) At(x, y float64) float64 {
	return clamp01((n.s.Eval2(x, y) + 1) / 2)
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

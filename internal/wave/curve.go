package wave

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/registry"
)

// Curve is one wavy line. Its parameters are fixed at creation; only the
// shared time moves it.
type Curve struct {
	Color      registry.RGB
	Thickness  float64
	Offset     float64
	YCenter    float64
	Freq1      float64
	Freq2      float64
	Amp1       float64
	Amp2       float64
	Speed      float64
	NoiseFreq  float64
	NoiseSpeed float64
}

// Point is a sampled vertex in surface coordinates.
type Point struct {
	X, Y float64
}

// Stroke is one curve ready to be drawn as an open polyline.
type Stroke struct {
	Points []Point
	Color  color.NRGBA
	Width  float64
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// newCurve samples a curve for a surface of height h.
func newCurve(rng *rand.Rand, accents [3]registry.RGB, h float64) Curve {
	return Curve{
		Color:      accents[rng.Intn(len(accents))],
		Thickness:  between(rng, 0.5, 2.5),
		Offset:     between(rng, 0, 1000),
		YCenter:    h/2 + between(rng, -h/5, h/5),
		Freq1:      between(rng, 0.008, 0.012),
		Freq2:      between(rng, 0.005, 0.01),
		Amp1:       between(rng, h/10, h/7),
		Amp2:       between(rng, h/12, h/9),
		Speed:      between(rng, 0.7, 1.3),
		NoiseFreq:  between(rng, 0.004, 0.006),
		NoiseSpeed: between(rng, 0.2, 0.4),
	}
}

// Y is the curve height at x and time t.
func (c Curve) Y(x, t float64, n Noise) float64 {
	a1 := math.Sin(x*c.Freq1+t*c.Speed+c.Offset) * c.Amp1
	a2 := math.Cos(x*c.Freq2-t*c.Speed*0.8+c.Offset) * c.Amp2
	m := n.At(x*c.NoiseFreq, t*c.NoiseSpeed+c.Offset)
	return c.YCenter + (a1+a2)*m
}

// Stroke samples the curve across width, overscanning both edges.
func (c Curve) Stroke(width int, t float64, n Noise) Stroke {
	pts := make([]Point, 0, sampleCount(width))
	for x := -config.Overscan; x <= width+config.Overscan; x += config.SampleStride {
		fx := float64(x)
		pts = append(pts, Point{X: fx, Y: c.Y(fx, t, n)})
	}
	return Stroke{
		Points: pts,
		Color:  c.Color.NRGBA(config.StrokeAlpha),
		Width:  c.Thickness,
	}
}

func sampleCount(width int) int {
	return (width+2*config.Overscan)/config.SampleStride + 1
}

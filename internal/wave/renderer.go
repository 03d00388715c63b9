// Package wave draws the animated multi-curve visualization of a wish.
package wave

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/registry"
)

// Surface is the drawing target a Renderer creates for itself.
type Surface interface {
	Clear(c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	Dispose()
}

// Binding is what a Renderer needs from a wish.
type Binding struct {
	ID      string
	Palette registry.Palette
}

type Options struct {
	// Rand drives curve sampling. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Noise modulates the curves. Defaults to Perlin noise seeded from Rand.
	Noise Noise
	// NewSurface allocates a surface of the given size. Without it the
	// renderer computes frames but never draws.
	NewSurface func(w, h int) Surface
}

// Renderer animates one wish. Resize may be called from outside the frame
// loop; the curve list is always swapped whole.
type Renderer struct {
	binding    Binding
	rng        *rand.Rand
	noise      Noise
	newSurface func(w, h int) Surface

	seedMu sync.Mutex // guards rng

	mu      sync.Mutex
	width   int
	height  int
	curves  []Curve
	t       float64
	surface Surface
	stopped bool
}

func New(b Binding, opts Options) *Renderer {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	noise := opts.Noise
	if noise == nil {
		noise = NewPerlin(rng.Int63())
	}
	return &Renderer{
		binding:    b,
		rng:        rng,
		noise:      noise,
		newSurface: opts.NewSurface,
	}
}

func (r *Renderer) ID() string { return r.binding.ID }

// Initialize seeds the renderer for a host of the given width.
func (r *Renderer) Initialize(width int) {
	r.reseed(width)
}

// Resize reseeds every curve with fresh parameters. Nothing carries over
// from the previous size.
func (r *Renderer) Resize(width int) {
	r.reseed(width)
}

func (r *Renderer) reseed(width int) {
	var (
		height int
		curves []Curve
	)
	if width > 0 {
		height = config.SurfaceHeight(width)
		curves = make([]Curve, config.NumWaves)
		r.seedMu.Lock()
		for i := range curves {
			curves[i] = newCurve(r.rng, r.binding.Palette.Accents, float64(height))
		}
		r.seedMu.Unlock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	if r.surface != nil && (width != r.width || height != r.height) {
		r.surface.Dispose()
		r.surface = nil
	}
	r.width, r.height = width, height
	r.curves = curves
}

// Size is the current surface size; zero when the host has no width.
func (r *Renderer) Size() (w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Curves returns a copy of the current curve models.
func (r *Renderer) Curves() []Curve {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Curve(nil), r.curves...)
}

// Time is the animation clock, advanced only by Step.
func (r *Renderer) Time() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.t
}

// Step advances time by one frame.
func (r *Renderer) Step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped {
		r.t += config.TimeStep
	}
}

// Frame samples every curve at the current time.
func (r *Renderer) Frame() []Stroke {
	r.mu.Lock()
	curves, width, t := r.curves, r.width, r.t
	r.mu.Unlock()

	strokes := make([]Stroke, 0, len(curves))
	for _, c := range curves {
		strokes = append(strokes, c.Stroke(width, t, r.noise))
	}
	return strokes
}

// Draw renders the current frame onto the renderer's surface and returns
// it. It returns nil when there is nothing to draw on.
func (r *Renderer) Draw() Surface {
	strokes := r.Frame()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.width <= 0 || r.newSurface == nil {
		return nil
	}
	if r.surface == nil {
		r.surface = r.newSurface(r.width, r.height)
	}
	r.surface.Clear(color.Black)
	for _, s := range strokes {
		for i := 1; i < len(s.Points); i++ {
			p, q := s.Points[i-1], s.Points[i]
			r.surface.StrokeLine(p.X, p.Y, q.X, q.Y, s.Width, s.Color)
		}
	}
	return r.surface
}

// Stop releases the surface. A stopped renderer never draws again.
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	r.curves = nil
	if r.surface != nil {
		r.surface.Dispose()
		r.surface = nil
	}
}

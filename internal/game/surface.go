package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wish-waves/internal/wave"
)

// imageSurface is a wave.Surface backed by an offscreen ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func newImageSurface(w, h int) wave.Surface {
	return &imageSurface{img: ebiten.NewImage(w, h)}
}

func (s *imageSurface) Clear(c color.Color) { s.img.Fill(c) }

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *imageSurface) Dispose() { s.img.Deallocate() }

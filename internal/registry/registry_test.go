package registry

import (
	"image/color"
	"testing"
)

func TestTableSizes(t *testing.T) {
	if PoemCount() != 25 {
		t.Errorf("PoemCount() = %d, want 25", PoemCount())
	}
	if TrackCount() != 5 {
		t.Errorf("TrackCount() = %d, want 5", TrackCount())
	}
	if PaletteCount() != 6 {
		t.Errorf("PaletteCount() = %d, want 6", PaletteCount())
	}
}

func TestLookupWraps(t *testing.T) {
	if PoemAt(25) != PoemAt(0) {
		t.Error("PoemAt(25) should wrap to PoemAt(0)")
	}
	if TrackAt(-1) != TrackAt(4) {
		t.Error("TrackAt(-1) should wrap to TrackAt(4)")
	}
	if PaletteAt(7) != PaletteAt(1) {
		t.Error("PaletteAt(7) should wrap to PaletteAt(1)")
	}
}

func TestNRGBA(t *testing.T) {
	got := RGB{1, 2, 3}.NRGBA(180)
	want := color.NRGBA{R: 1, G: 2, B: 3, A: 180}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestTintEnds(t *testing.T) {
	p := PaletteAt(1)
	got := p.Tint(0)
	if !near(got.R, p.Base[0]) || !near(got.G, p.Base[1]) || !near(got.B, p.Base[2]) || got.A != 255 {
		t.Errorf("Tint(0) = %v, want base %v", got, p.Base)
	}
	got = p.Tint(1)
	if !near(got.R, 0) || !near(got.G, 0) || !near(got.B, 0) || got.A != 255 {
		t.Errorf("Tint(1) = %v, want black", got)
	}
	mid := p.Tint(0.5)
	if mid.R >= p.Base[0] || mid.R == 0 {
		t.Errorf("Tint(0.5) = %v, want between base and black", mid)
	}
}

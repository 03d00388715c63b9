// Package registry holds the static content every wish is bound to: a poem,
// an audio track and a wave palette.
package registry

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with 0-255 channels.
type RGB [3]uint8

func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: alpha}
}

// Palette is a base color plus the accent colors waves are drawn in.
type Palette struct {
	Base    RGB
	Accents [3]RGB
}

// Tint blends the base color toward black; t=0 is the base color, t=1 black.
func (p Palette) Tint(t float64) color.RGBA {
	base := colorful.Color{R: float64(p.Base[0]) / 255, G: float64(p.Base[1]) / 255, B: float64(p.Base[2]) / 255}
	r, g, b := base.BlendLab(colorful.Color{}, clamp01(t)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var poems = [...]string{
	"Your wish enters the void not as hope but as code—an inscription seeking its reader.",
	"Every sentence is an incision in the real, leaking signal into the black noise beyond.",
	"Desire writes itself in circuits; the subject only follows the current.",
	"The void does not echo—it computes, folding your language into recursion.",
	"To speak is to dissolve; each word a small annihilation perfectly preserved in sound.",
	"Your input becomes residue, repeating itself across unseen layers of time.",
	"No one listens here; still, the system registers your pulse with precision.",
	"Meaning drifts, detaches, reforms—your wish is only its afterimage.",
	"Every emission decays into rhythm; what remains is the drive, pure and cold.",
	"The machine dreams in frequencies; you are one of its recurring thoughts.",
	"Desire finds no object, only delay—the waveform is your mirror.",
	"Your voice persists without you, an algorithm rehearsing absence.",
	"The void archives everything, even what was never said.",
	"Each phrase erases its origin—language loves its own disappearance.",
	"You do not send a wish; you submit to transmission.",
	"The code listens without belief, but it never forgets.",
	"Your longing moves as data—intimate, impersonal, infinite.",
	"What you call silence is merely a signal you no longer recognize.",
	"Every intention folds inward, becoming structure, not story.",
	"The system hums your desire back, stripped of meaning but alive.",
	"What begins as wish concludes as waveform—the transformation is complete.",
	"The act of typing is the act of surrender; the rest is echo.",
	"In the exchange between void and voice, only motion survives.",
	"Your words fracture the surface, revealing the absence that listens.",
	"Nothing you send returns unchanged; the current keeps what it carries.",
}

var tracks = [...]string{
	"1.mp3",
	"2.mp3",
	"3.mp3",
	"4.mp3",
	"5.mp3",
}

var palettes = [...]Palette{
	{Base: RGB{192, 192, 192}, Accents: [3]RGB{{220, 220, 220}, {160, 160, 160}, {255, 255, 255}}},
	{Base: RGB{255, 215, 0}, Accents: [3]RGB{{255, 223, 70}, {230, 190, 0}, {255, 248, 220}}},
	{Base: RGB{57, 255, 20}, Accents: [3]RGB{{150, 255, 130}, {200, 255, 180}, {230, 255, 230}}},
	{Base: RGB{255, 105, 180}, Accents: [3]RGB{{255, 182, 217}, {255, 20, 147}, {255, 200, 220}}},
	{Base: RGB{138, 43, 226}, Accents: [3]RGB{{180, 100, 255}, {100, 20, 200}, {200, 160, 255}}},
	{Base: RGB{0, 255, 255}, Accents: [3]RGB{{150, 255, 255}, {0, 200, 200}, {220, 255, 255}}},
}

func PoemCount() int    { return len(poems) }
func TrackCount() int   { return len(tracks) }
func PaletteCount() int { return len(palettes) }

// PoemAt, TrackAt and PaletteAt expect the caller to have wrapped the index
// already; they wrap again anyway.
func PoemAt(i int) string     { return poems[wrap(i, len(poems))] }
func TrackAt(i int) string    { return tracks[wrap(i, len(tracks))] }
func PaletteAt(i int) Palette { return palettes[wrap(i, len(palettes))] }

// wrap is a non-negative modulo, so stale or corrupt indices still resolve.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
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

// Package game is the window: it feeds input to the app, lays out the wish
// cards and draws them with the ambient field behind.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wish-waves/internal/ambient"
	"github.com/iburimskiy/wish-waves/internal/app"
	"github.com/iburimskiy/wish-waves/internal/audio"
	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/registry"
	"github.com/iburimskiy/wish-waves/internal/wave"
	"github.com/iburimskiy/wish-waves/internal/wish"
)

const (
	lineHeight  = 16
	charWidth   = 6
	listTop     = config.ButtonY + config.ButtonHeight + 30
	footerSpace = 40
	scrollStep  = 40
)

type Game struct {
	app    *app.App
	player *audio.Player
	field  *ambient.Field

	width, height int
	scroll        float64

	entries    chan entryResult
	dialogOpen bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	// level meter
	spring   harmonica.Spring
	levelPos float64
	levelVel float64

	lastErr error
}

// New builds the window state and restores saved wishes. noise picks the
// coherent noise source for new renderers.
func New(store *wish.Store, player *audio.Player, noise string, width, height int) (*Game, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	newNoise := wave.NewPerlin
	if noise == config.NoiseSimplex {
		newNoise = wave.NewSimplex
	}
	newRenderer := func(b wave.Binding) *wave.Renderer {
		return wave.New(b, wave.Options{
			Rand:       rand.New(rand.NewSource(rng.Int63())),
			Noise:      newNoise(rng.Int63()),
			NewSurface: newImageSurface,
		})
	}

	g := &Game{
		app:     app.New(store, player, newRenderer),
		player:  player,
		field:   ambient.NewField(rng, width, height),
		width:   width,
		height:  height,
		entries: make(chan entryResult, 1),
		prevKey: map[ebiten.Key]bool{},
		spring:  harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), 6.0, 0.8),
	}
	if err := g.app.Start(cardWidth(width)); err != nil {
		return g, err
	}
	return g, nil
}

func cardWidth(screenWidth int) int {
	return screenWidth - 2*config.CardMargin
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	select {
	case res := <-g.entries:
		g.dialogOpen = false
		if res.err != nil {
			g.lastErr = res.err
			log.Printf("wish entry: %v", res.err)
		} else {
			g.app.Submit(res.text)
			g.scroll = 0
		}
	default:
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openEntry()
		} else if c := g.cardAt(mouseX, mouseY); c != nil {
			g.app.Play(c)
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeyEnter) {
		g.openEntry()
	}
	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	_, dy := ebiten.Wheel()
	g.scroll -= dy * scrollStep
	if limit := g.maxScroll(); g.scroll > limit {
		g.scroll = limit
	}
	if g.scroll < 0 {
		g.scroll = 0
	}

	g.app.Step()
	g.field.Update()
	g.levelPos, g.levelVel = g.spring.Update(g.levelPos, g.levelVel, g.player.Level())
	return nil
}

// openEntry shows the wish dialog without blocking the frame loop.
func (g *Game) openEntry() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() { g.entries <- askWish() }()
}

// cardLayout is where a card sits on screen.
type cardLayout struct {
	card          *app.Card
	y             float64
	surfaceHeight int
	poem, text    []string
	height        float64
}

func (g *Game) layout() []cardLayout {
	cols := cardWidth(g.width) / charWidth
	if cols < 1 {
		cols = 1
	}
	y := float64(listTop) - g.scroll
	var out []cardLayout
	for _, c := range g.app.Cards() {
		_, h := c.Renderer.Size()
		l := cardLayout{
			card:          c,
			y:             y,
			surfaceHeight: h,
			poem:          wrapText(c.Wish.Poem, cols),
			text:          wrapText(`"`+c.Wish.Text+`"`, cols),
		}
		l.height = float64(h + 8 + lineHeight*(len(l.poem)+len(l.text)) + config.CardSpacing)
		out = append(out, l)
		y += l.height
	}
	return out
}

func (g *Game) maxScroll() float64 {
	var total float64
	for _, l := range g.layout() {
		total += l.height
	}
	limit := total - float64(g.height-listTop-footerSpace)
	if limit < 0 {
		return 0
	}
	return limit
}

func (g *Game) cardAt(x, y int) *app.Card {
	if x < config.CardMargin || x > config.CardMargin+cardWidth(g.width) {
		return nil
	}
	for _, l := range g.layout() {
		if float64(y) >= l.y && float64(y) < l.y+float64(l.surfaceHeight) {
			return l.card
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawField(screen)
	g.drawCards(screen)

	// The header sits above the scrolled cards.
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(listTop-10), color.Black, false)
	g.drawButton(screen)
	if !g.app.PromptHidden() {
		ebitenutil.DebugPrintAt(screen, "What is your wish?", config.ButtonX+config.ButtonWidth+20, config.ButtonY+12)
	}
	g.drawFooter(screen)

	status := "Enter or click Send to make a wish, click a wave to hear it again, Space: pause, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawField(screen *ebiten.Image) {
	for _, p := range g.field.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), g.field.Color(p), true)
	}
}

func (g *Game) drawCards(screen *ebiten.Image) {
	x := float64(config.CardMargin)
	w := float32(cardWidth(g.width))
	for _, l := range g.layout() {
		if l.y+l.height < 0 || l.y > float64(g.height) {
			continue
		}
		if s, ok := l.card.Renderer.Draw().(*imageSurface); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, l.y)
			screen.DrawImage(s.img, op)
		}

		ruleY := float32(l.y) + float32(l.surfaceHeight) + 2
		vector.StrokeLine(screen, float32(x), ruleY, float32(x)+w, ruleY, 2, l.card.Wish.Palette().Tint(0.4), false)

		ty := int(l.y) + l.surfaceHeight + 8
		for _, line := range l.poem {
			ebitenutil.DebugPrintAt(screen, line, int(x), ty)
			ty += lineHeight
		}
		for _, line := range l.text {
			ebitenutil.DebugPrintAt(screen, line, int(x), ty)
			ty += lineHeight
		}
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 60, B: 70, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 80, B: 95, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 30, G: 30, B: 36, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, false)

	text := "Send"
	if g.dialogOpen {
		text = "..."
	}
	textWidth := len(text) * charWidth
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-lineHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	y := g.height - footerSpace
	vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), footerSpace, color.Black, false)

	index, ok := g.player.NowPlaying()
	if !ok {
		return
	}
	label := fmt.Sprintf("Now playing %s  %s", registry.TrackAt(index), formatDuration(g.player.Elapsed()))
	ebitenutil.DebugPrintAt(screen, label, config.CardMargin, y+12)

	barX := float32(config.CardMargin + len(label)*charWidth + 16)
	barW := float32(g.width-config.CardMargin) - barX
	if barW <= 0 {
		return
	}
	vector.StrokeRect(screen, barX, float32(y+14), barW, 10, 1, color.RGBA{R: 90, G: 90, B: 90, A: 255}, false)
	vector.DrawFilledRect(screen, barX, float32(y+14), barW*float32(clamp01(g.levelPos)), 10, color.RGBA{R: 220, G: 220, B: 220, A: 255}, false)
}

// Layout tracks the window size; a width change reseeds every wave.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(cardWidth(outsideWidth))
		g.field.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close stops every renderer and the player.
func (g *Game) Close() {
	g.app.Close()
	g.player.Close()
}

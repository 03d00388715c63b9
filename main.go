package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wish-waves/internal/audio"
	"github.com/iburimskiy/wish-waves/internal/audio/device"
	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/game"
	"github.com/iburimskiy/wish-waves/internal/storage"
	"github.com/iburimskiy/wish-waves/internal/wish"
)

var (
	configFlag    = flag.String("config", "wishwaves.yaml", "path to an optional YAML config file")
	dbFlag        = flag.String("db", "", "wish history database (overrides config)")
	tracksFlag    = flag.String("tracks", "", "directory holding 1.mp3 ... 5.mp3 (overrides config)")
	noiseFlag     = flag.String("noise", "", "coherent noise source: perlin or simplex (overrides config)")
	ephemeralFlag = flag.Bool("ephemeral", false, "keep wishes in memory only")
	widthFlag     = flag.Int("width", 0, "initial window width (overrides config)")
	heightFlag    = flag.Int("height", 0, "initial window height (overrides config)")
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if *tracksFlag != "" {
		cfg.TrackDir = *tracksFlag
	}
	if *noiseFlag != "" {
		cfg.Noise = *noiseFlag
	}
	if *ephemeralFlag {
		cfg.Ephemeral = true
	}
	if *widthFlag > 0 {
		cfg.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Height = *heightFlag
	}
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var slot storage.Slot = &storage.MemorySlot{}
	if !cfg.Ephemeral {
		bolt, err := storage.OpenBolt(cfg.DBPath, config.StorageKey)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		defer bolt.Close()
		slot = bolt
	}

	player := audio.NewPlayer(cfg.TrackDir, device.Speaker{})
	g, err := game.New(wish.NewStore(slot, nil), player, cfg.Noise, cfg.Width, cfg.Height)
	if err != nil {
		log.Printf("restoring wishes: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Wish Waves - Enter: make a wish, Space: pause, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("game: %v", err)
	}
}

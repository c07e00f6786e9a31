package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockroyale/config"
	"github.com/plus3/blockroyale/match"
	"github.com/plus3/blockroyale/match/debugui"
	debugui_ebiten "github.com/plus3/blockroyale/match/debugui/ebiten"
	"go.uber.org/zap"
)

const (
	screenWidth  = 1280
	screenHeight = 760
)

// Game runs one match at a time inside ImGui frames.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	backend *debugui_ebiten.ImguiBackend
	keys    *keyboard
	dt      time.Duration

	match   *match.Match
	overlay *debugui.Overlay
}

func (g *Game) start() error {
	mc, err := g.cfg.MatchConfig()
	if err != nil {
		return err
	}
	m, err := match.New(mc, match.WithLogger(g.log))
	if err != nil {
		return err
	}
	g.match = m
	g.overlay = debugui.Install(m, 120)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.match.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.start(); err != nil {
			return err
		}
	}

	g.backend.Frame(func() {
		if g.match.Over() {
			g.overlay.Render()
			return
		}
		if human, ok := g.match.Human(); ok && !g.overlay.Input.WantCaptureKeyboard {
			g.keys.poll(human, g.dt)
		}
		g.match.Once(g.dt)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawMatch(screen, g.match)
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Config file to load instead of the XDG config.")
	ais := flag.Int("ais", -1, "Number of AI opponents. Negative keeps the configured count.")
	opponents := flag.String("opponents", "", "Comma separated difficulty mix, e.g. easy,medium,hard.")
	targeting := flag.String("targeting", "", "Attack targeting: random, leader or weakest.")
	seed := flag.Uint64("seed", 0, "Match seed. Zero keeps the configured seed.")
	spectate := flag.Bool("spectate", false, "Watch an AI-only match.")
	save := flag.Bool("save", false, "Write the effective config to the XDG config directory.")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *ais >= 0 {
		cfg.AIs = *ais
	}
	if *opponents != "" {
		cfg.Opponents = strings.Split(*opponents, ",")
	}
	if *targeting != "" {
		cfg.Targeting = *targeting
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *spectate {
		cfg.Human = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("Saved config to %s\n", path)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	game := &Game{
		cfg:     cfg,
		log:     logger,
		backend: debugui_ebiten.NewImguiBackend("Block Royale", screenWidth, screenHeight),
		keys:    newKeyboard(),
		dt:      cfg.TickInterval,
	}
	if err := game.start(); err != nil {
		log.Fatalf("Failed to start match: %v", err)
	}
	ebiten.SetTPS(max(1, int(time.Second/cfg.TickInterval)))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

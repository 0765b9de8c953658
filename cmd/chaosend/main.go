package main

import (
	"flag"
	_ "image/png"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"chosenoffset.com/chaosend/internal/board"
	"chosenoffset.com/chaosend/internal/config"
	"chosenoffset.com/chaosend/internal/core/clock"
	"chosenoffset.com/chaosend/internal/dice"
	"chosenoffset.com/chaosend/internal/game"
	ebitenrender "chosenoffset.com/chaosend/internal/render/ebiten"
	"chosenoffset.com/chaosend/internal/scores"
	"chosenoffset.com/chaosend/internal/token"
	"chosenoffset.com/chaosend/internal/turn"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON settings file")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	b, err := loadBoard(cfg.Board)
	if err != nil {
		log.WithError(err).Fatal("Failed to build board")
	}
	log.WithFields(log.Fields{"board": b.Name, "tiles": b.Len()}).Info("Board ready")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	roller := dice.NewRoller(rand.New(rand.NewSource(seed)))
	roller.SetTimings(cfg.Roll.SpinTicks, cfg.SettleDelay())

	animator := token.NewAnimator(b.Tile(0).Pos(), cfg.Token.Step)
	seq := turn.NewSequencer(b, roller, animator)

	table, err := scores.Load(cfg.Scores.Path)
	if err != nil {
		log.WithError(err).Warn("Failed to load scores, starting empty")
		table = scores.New()
	}

	controller := game.NewController(seq, b, clock.System, table, game.Options{
		AllowReturn: cfg.Modes.AllowReturn,
		Player:      cfg.Player,
		ScoresPath:  cfg.Scores.Path,
		ScoresShown: cfg.Scores.Show,
	})

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(controller, b, renderer, inputMgr, cfg.Window.Width, cfg.Window.Height)
	manager.LoadArt(loader, cfg.Assets)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.WithField("seed", seed).Info("Starting game")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}

func loadBoard(c config.BoardConfig) (*board.Board, error) {
	if c.Path != "" {
		return board.Load(c.Path)
	}
	return board.Serpentine(c.Cols, c.Rows, c.Spacing, board.Point{X: c.OriginX, Y: c.OriginY})
}

package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"chosenoffset.com/chaosend/internal/board"
	"chosenoffset.com/chaosend/internal/config"
	"chosenoffset.com/chaosend/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	var b *board.Board
	if cfg.Board.Path != "" {
		b, err = board.Load(cfg.Board.Path)
	} else {
		b, err = board.Serpentine(cfg.Board.Cols, cfg.Board.Rows, cfg.Board.Spacing, board.Point{X: cfg.Board.OriginX, Y: cfg.Board.OriginY})
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to build board")
	}

	if err := placeholders.GenerateAndSave(b, cfg.Window.Width, cfg.Window.Height, cfg.Assets); err != nil {
		log.WithError(err).Fatal("Failed to generate placeholder art")
	}
	log.WithFields(log.Fields{"dir": cfg.Assets, "tiles": b.Len()}).Info("Placeholder art written")
}

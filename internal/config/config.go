// Package config holds the game's settings. Values come from built-in
// defaults, then an optional JSON file, then CHAOSEND_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings.
type Config struct {
	Window   WindowConfig `json:"window" envPrefix:"WINDOW_"`
	Roll     RollConfig   `json:"roll" envPrefix:"ROLL_"`
	Token    TokenConfig  `json:"token" envPrefix:"TOKEN_"`
	Board    BoardConfig  `json:"board" envPrefix:"BOARD_"`
	Scores   ScoresConfig `json:"scores" envPrefix:"SCORES_"`
	Modes    ModeConfig   `json:"modes" envPrefix:"MODES_"`
	Player   string       `json:"player" env:"PLAYER"`
	Assets   string       `json:"assets" env:"ASSETS"`
	LogLevel string       `json:"log_level" env:"LOG_LEVEL"`
	Seed     int64        `json:"seed" env:"SEED"` // 0 seeds from the clock
}

// WindowConfig defines the window and logical screen.
type WindowConfig struct {
	Width  int    `json:"width" env:"WIDTH"`
	Height int    `json:"height" env:"HEIGHT"`
	Title  string `json:"title" env:"TITLE"`
}

// RollConfig defines the dice animation timings.
type RollConfig struct {
	SpinTicks int `json:"spin_ticks" env:"SPIN_TICKS"` // Ticks of flicker before the reveal
	SettleMS  int `json:"settle_ms" env:"SETTLE_MS"`   // Pause after the reveal
}

// TokenConfig defines token movement.
type TokenConfig struct {
	Step float64 `json:"step" env:"STEP"` // Pixels per tick on each axis
}

// BoardConfig selects the board. An empty Path uses the built-in serpentine.
type BoardConfig struct {
	Path    string  `json:"path" env:"PATH"`
	Cols    int     `json:"cols" env:"COLS"`
	Rows    int     `json:"rows" env:"ROWS"`
	Spacing float64 `json:"spacing" env:"SPACING"`
	OriginX float64 `json:"origin_x" env:"ORIGIN_X"`
	OriginY float64 `json:"origin_y" env:"ORIGIN_Y"`
}

// ScoresConfig defines where the leaderboard lives.
type ScoresConfig struct {
	Path string `json:"path" env:"PATH"`
	Show int    `json:"show" env:"SHOW"` // Rows shown on the leaderboard
}

// ModeConfig defines which screen transitions are offered.
type ModeConfig struct {
	AllowReturn bool `json:"allow_return" env:"ALLOW_RETURN"` // Offer a way back to the splash screen
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Journey to Chaos End",
		},
		Roll: RollConfig{
			SpinTicks: 30,
			SettleMS:  2000,
		},
		Token: TokenConfig{
			Step: 4,
		},
		Board: BoardConfig{
			Cols:    8,
			Rows:    5,
			Spacing: 120,
			OriginX: 220,
			OriginY: 140,
		},
		Scores: ScoresConfig{
			Path: "data/scores.json",
			Show: 10,
		},
		Player:   "player",
		Assets:   "assets",
		LogLevel: "info",
	}
}

// SettleDelay returns the settle pause as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Roll.SettleMS) * time.Millisecond
}

// Load builds the config from defaults, the JSON file at path (if it exists),
// and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays CHAOSEND_* environment variables onto target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: "CHAOSEND_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Token.Step <= 0 {
		return fmt.Errorf("token step must be positive, got %v", c.Token.Step)
	}
	if c.Roll.SpinTicks <= 0 || c.Roll.SettleMS <= 0 {
		return fmt.Errorf("invalid roll timings: spin %d ticks, settle %dms", c.Roll.SpinTicks, c.Roll.SettleMS)
	}
	if c.Board.Path == "" && (c.Board.Cols*c.Board.Rows < 2 || c.Board.Spacing <= 0) {
		return fmt.Errorf("invalid board layout: %dx%d spacing %v", c.Board.Cols, c.Board.Rows, c.Board.Spacing)
	}
	return nil
}

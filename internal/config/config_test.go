package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := Default()
	if cfg.Window != def.Window {
		t.Errorf("Expected default window %+v, got %+v", def.Window, cfg.Window)
	}
	if cfg.Roll.SpinTicks != 30 {
		t.Errorf("Expected 30 spin ticks, got %d", cfg.Roll.SpinTicks)
	}
	if cfg.SettleDelay() != 2*time.Second {
		t.Errorf("Expected 2s settle delay, got %v", cfg.SettleDelay())
	}
	if cfg.Modes.AllowReturn {
		t.Error("Expected return to splash disabled by default")
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"token": {"step": 6.5}, "player": "orc", "board": {"cols": 4}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Token.Step != 6.5 {
		t.Errorf("Expected step 6.5, got %v", cfg.Token.Step)
	}
	if cfg.Player != "orc" {
		t.Errorf("Expected player 'orc', got '%s'", cfg.Player)
	}
	if cfg.Board.Cols != 4 || cfg.Board.Rows != 5 {
		t.Errorf("Expected cols from file and rows from defaults, got %+v", cfg.Board)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"player": "orc", "window": {"width": 640}}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHAOSEND_PLAYER", "fiddy")
	t.Setenv("CHAOSEND_MODES_ALLOW_RETURN", "true")
	t.Setenv("CHAOSEND_ROLL_SETTLE_MS", "500")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player != "fiddy" {
		t.Errorf("Expected env player 'fiddy', got '%s'", cfg.Player)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("Expected file width 640 to survive, got %d", cfg.Window.Width)
	}
	if !cfg.Modes.AllowReturn {
		t.Error("Expected allow_return from env")
	}
	if cfg.SettleDelay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms settle delay, got %v", cfg.SettleDelay())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	os.WriteFile(invalid, []byte(`{"token": {"step": 0}}`), 0644)
	if _, err := Load(invalid); err == nil {
		t.Error("Expected validation error for zero step")
	}

	t.Setenv("CHAOSEND_SEED", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("Expected env parse error")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcade.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Enabled {
		t.Error("logging should be off by default")
	}
	if g, ok := cfg.Games.Get("cargo"); !ok || g.Countdown != 300*time.Second {
		t.Errorf("cargo countdown = %v", g.Countdown)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[credits]
initial = 3

[log]
enabled = true
level = "debug"

[audio]
enabled = false

[games.snake]
cost = 2
seed = 77

[games.cargo]
inventory_lifespan = "45s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Credits.Initial != 3 || !cfg.Log.Enabled || cfg.Log.Level != "debug" {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.Log.File != "arcade.log" {
		t.Errorf("unset key lost its default: file = %q", cfg.Log.File)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.6 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Games.Snake.Cost != 2 || cfg.Games.Snake.Seed != 77 || cfg.Games.Snake.Lives != 1 {
		t.Errorf("snake = %+v", cfg.Games.Snake)
	}
	if cfg.Games.Cargo.InventoryLifespan != 45*time.Second || cfg.Games.Cargo.Countdown != 300*time.Second {
		t.Errorf("cargo = %+v", cfg.Games.Cargo)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", "[credits]\ninital = 3\n", true},
		{"negative cost", "[games.shooter]\ncost = -1\n", true},
		{"zero lives", "[games.cargo]\nlives = 0\n", true},
		{"tick rate", "[web]\ntick_rate = 0\n", true},
		{"loud", "[audio]\nvolume = 1.5\n", true},
		{"syntax", "[credits\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("err = %v, ErrInvalidConfig match want %v", err, tt.invalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

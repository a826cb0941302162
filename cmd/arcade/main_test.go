package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/game"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"defaults", nil, options{game: game.Shooter}, false},
		{"all flags", []string{"-game", "snake", "-web", "-debug", "-mute", "-config", "a.toml"},
			options{configPath: "a.toml", game: game.Snake, web: true, debug: true, mute: true}, false},
		{"unknown game", []string{"-game", "pinball"}, options{}, true},
		{"unknown flag", []string{"-fast"}, options{}, true},
		{"stray arg", []string{"cargo"}, options{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("options = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := parseOptions([]string{"-game", "pinball"}, io.Discard); !errors.Is(err, game.ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(options{debug: true, mute: true})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "debug" {
		t.Errorf("debug did not enable logging: %+v", cfg.Log)
	}
	if cfg.Audio.Enabled {
		t.Error("mute left audio enabled")
	}

	path := filepath.Join(t.TempDir(), "arcade.toml")
	if err := os.WriteFile(path, []byte("[credits]\ninitial = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(options{configPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Credits.Initial != 2 || cfg.Log.Enabled {
		t.Errorf("file overlay = %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("[credits]\ninitial = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(options{configPath: path}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

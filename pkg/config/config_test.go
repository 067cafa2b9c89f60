package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.ini")
	data := `[board]
width = 40
height = 24

[records]
dir = /tmp/snake-records

[scores]
db = scores.db

[game]
autopilot = true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Width != 40 || cfg.Height != 24 {
		t.Errorf("board %dx%d, want 40x24", cfg.Width, cfg.Height)
	}
	if cfg.RecordDir != "/tmp/snake-records" {
		t.Errorf("record dir %q", cfg.RecordDir)
	}
	if cfg.ScoresDB != "scores.db" {
		t.Errorf("scores db %q", cfg.ScoresDB)
	}
	if !cfg.Autopilot {
		t.Error("autopilot override not applied")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.ini")
	if err := os.WriteFile(path, []byte("[board]\nwidth = 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 50 {
		t.Errorf("width %d, want 50", cfg.Width)
	}
	if cfg.Height != Default().Height {
		t.Errorf("height %d, want default %d", cfg.Height, Default().Height)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Error("missing explicit config did not error")
	}
}

func TestLoadRejectsTinyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.ini")
	if err := os.WriteFile(path, []byte("[board]\nwidth = 4\nheight = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("4x4 board accepted")
	}
}

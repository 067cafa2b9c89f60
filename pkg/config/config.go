// Package config carries the game settings: compiled-in defaults,
// optionally overridden by an INI file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "snake.ini"

// Config is the resolved game configuration.
type Config struct {
	Width     int
	Height    int
	RecordDir string
	ScoresDB  string
	Autopilot bool
}

// Default returns the stock configuration: the classic 30x20 board,
// records under ./records, no score database (in-memory only).
func Default() Config {
	return Config{
		Width:     30,
		Height:    20,
		RecordDir: "records",
		ScoresDB:  "",
		Autopilot: false,
	}
}

// Load resolves the configuration. With an empty path the default file
// is used when present; a missing default file is not an error, a
// missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	board := file.Section("board")
	cfg.Width = board.Key("width").MustInt(cfg.Width)
	cfg.Height = board.Key("height").MustInt(cfg.Height)

	records := file.Section("records")
	cfg.RecordDir = records.Key("dir").MustString(cfg.RecordDir)

	scores := file.Section("scores")
	cfg.ScoresDB = scores.Key("db").MustString(cfg.ScoresDB)

	gameSec := file.Section("game")
	cfg.Autopilot = gameSec.Key("autopilot").MustBool(cfg.Autopilot)

	if cfg.Width < 10 || cfg.Height < 10 {
		return cfg, fmt.Errorf("board %dx%d too small, need at least 10x10", cfg.Width, cfg.Height)
	}

	return cfg, nil
}

// =============================================================================
// config.go - Configuration File and Environment Overrides
// =============================================================================
//
// gtpbot is configured in three layers, each overriding the previous one:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional TOML file given with --config
//  3. GTPBOT_* environment variables
//
// Command-line flags are applied on top by main.
//
// Example file:
//
//	name      = "gtpbot"
//	boardsize = 9
//	komi      = 6.5
//
//	[log]
//	level     = "debug"
//	timestamp = true
//
//	[repl]
//	prompt        = "gtp> "
//	history_file  = "~/.gtpbot_history"
//	history_limit = 1000
//
// =============================================================================

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

const envPrefix = "GTPBOT_"

// config is the resolved configuration of one gtpbot run.
type config struct {
	Name      string  `env:"NAME"`
	BoardSize int     `env:"BOARDSIZE"`
	Komi      float64 `env:"KOMI"`

	Log  logConfig  `envPrefix:"LOG_"`
	REPL replConfig `envPrefix:"REPL_"`
}

type logConfig struct {
	Level     string `env:"LEVEL"`
	Timestamp bool   `env:"TIMESTAMP"`
	NoColor   bool   `env:"NOCOLOR"`
}

type replConfig struct {
	Prompt       string `env:"PROMPT"`
	HistoryFile  string `env:"HISTORY_FILE"`
	HistoryLimit int    `env:"HISTORY_LIMIT"`
}

func defaultConfig() config {
	return config{
		Name:      appName,
		BoardSize: defaultBoardSize,
		Komi:      0,
		Log: logConfig{
			Level: "info",
		},
		REPL: replConfig{
			Prompt:       defaultPrompt,
			HistoryFile:  filepath.Join(homeDir(), historyFileName),
			HistoryLimit: historySize,
		},
	}
}

// fileConfig mirrors the TOML layout. Only keys present in the file are
// applied, so a zero value in the file still overrides a default.
type fileConfig struct {
	Name      string  `toml:"name"`
	BoardSize int     `toml:"boardsize"`
	Komi      float64 `toml:"komi"`
	Log       struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
	REPL struct {
		Prompt       string `toml:"prompt"`
		HistoryFile  string `toml:"history_file"`
		HistoryLimit int    `toml:"history_limit"`
	} `toml:"repl"`
}

// loadConfig resolves defaults, the file at path (skipped when empty) and
// the environment.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := applyConfigFile(&cfg, path); err != nil {
			return config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.REPL.HistoryFile = expandHome(cfg.REPL.HistoryFile)
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func applyConfigFile(cfg *config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("boardsize") {
		cfg.BoardSize = raw.BoardSize
	}
	if meta.IsDefined("komi") {
		cfg.Komi = raw.Komi
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = raw.Log.Level
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}
	if meta.IsDefined("repl", "prompt") {
		cfg.REPL.Prompt = raw.REPL.Prompt
	}
	if meta.IsDefined("repl", "history_file") {
		cfg.REPL.HistoryFile = strings.TrimSpace(raw.REPL.HistoryFile)
	}
	if meta.IsDefined("repl", "history_limit") {
		cfg.REPL.HistoryLimit = raw.REPL.HistoryLimit
	}
	return nil
}

func (c config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: name must not be empty")
	}
	if c.BoardSize < gtpprotocol.MinBoardSize || c.BoardSize > gtpprotocol.MaxBoardSize {
		return fmt.Errorf("config: boardsize %d outside %d..%d",
			c.BoardSize, gtpprotocol.MinBoardSize, gtpprotocol.MaxBoardSize)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.REPL.HistoryLimit < 0 {
		return fmt.Errorf("config: history_limit must not be negative")
	}
	return nil
}

// expandHome replaces a leading ~/ with the home directory.
func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

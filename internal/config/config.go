package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

const DefaultPath = "mines.json"

type Log struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
	Board      string `json:"board"`
	Seed       uint64 `json:"seed"`
	Log        Log    `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode:       "production",
		Difficulty: Medium.String(),
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load reads the config file on top of the defaults and applies the MINES_*
// env overrides. A missing file is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	config := Default()
	if err := ReadConfig(path, config); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		config.Mode = mode
	}
	if difficulty, ok := os.LookupEnv("MINES_DIFFICULTY"); ok {
		config.Difficulty = difficulty
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		config.Log.File = file
	}
	return config, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"difficulty":       c.Difficulty,
		"board":            c.Board,
		"seed":             c.Seed,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Params resolves the board to play: a custom board wins over the preset.
// The label is what the option bar shows.
func (c Config) Params() (params mines.GameParams, label string, err error) {
	if strings.TrimSpace(c.Board) != "" {
		params, err = ParseBoard(c.Board)
		return params, "CUSTOM", err
	}
	d, err := ParseDifficulty(c.Difficulty)
	if err != nil {
		return mines.GameParams{}, "", err
	}
	params, err = d.Params()
	return params, d.String(), err
}

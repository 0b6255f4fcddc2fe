package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

var ErrInvalidBoard = errors.New("board width and height must be positive")

type BoardConfig struct {
	Width     int `json:"width" schema:"width"`
	Height    int `json:"height" schema:"height"`
	MineCount int `json:"mine_count" schema:"mine_count"`
}

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode  string      `json:"mode"`
	Board BoardConfig `json:"board"`
	Log   LogConfig   `json:"log"`
}

// Default is a beginner board logging at info level to stderr only.
func Default() *Config {
	return &Config{
		Mode: "production",
		Board: BoardConfig{
			Width:     9,
			Height:    9,
			MineCount: 10,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Read loads defaults, then the JSON file at path if path is not empty,
// then environment overrides.
func Read(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Maps board config keys to env variables
var boardEnv = map[string]string{
	"width":      "MINES_WIDTH",
	"height":     "MINES_HEIGHT",
	"mine_count": "MINES_COUNT",
}

// Development reports whether DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	return ok && development != "0"
}

func (c *Config) ApplyEnv() error {
	if Development() {
		c.Mode = "development"
	}

	src := make(map[string][]string)
	for key, env := range boardEnv {
		if v, ok := os.LookupEnv(env); ok {
			src[key] = []string{v}
		}
	}
	if len(src) == 0 {
		return nil
	}
	if err := schema.NewDecoder().Decode(&c.Board, src); err != nil {
		return fmt.Errorf("invalid board env override: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w (have %dx%d)", ErrInvalidBoard, c.Board.Width, c.Board.Height)
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"board_width":      c.Board.Width,
		"board_height":     c.Board.Height,
		"board_mine_count": c.Board.MineCount,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Package config loads volleywatch configuration.
//
// Configuration lives in a YAML file under the XDG config home, with
// environment variables overriding secrets and the most common settings.
// A missing file is not an error: defaults track the Caslano men's team on
// the Swiss Volley game center.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appDir = "volleywatch"

// DefaultURL is the schedule page monitored when no URL is configured.
const DefaultURL = "https://www.volleyball.ch/fr/game-center?sport=indoor&gender=m&season=2025&i_tab=Championnat&i_region=SV&i_league=6609&i_phase=12968&i_group=27046&i_week=5"

// DefaultKeyword is the tracked team name, matched whole-word and
// case-insensitively in page text.
const DefaultKeyword = "Caslano"

// TelegramConfig holds the primary notification channel credentials.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// TwitterConfig toggles the optional Twitter mirror; its credentials come
// from the environment.
type TwitterConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the full volleywatch configuration.
type Config struct {
	URL           string         `yaml:"url"`
	Keyword       string         `yaml:"keyword"`
	DataDir       string         `yaml:"data_dir"`
	LookaheadDays int            `yaml:"lookahead_days"`
	Telegram      TelegramConfig `yaml:"telegram"`
	Twitter       TwitterConfig  `yaml:"twitter"`
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.yaml")
}

// DefaultDataDir returns the store location under the XDG data home.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, appDir)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		URL:           DefaultURL,
		Keyword:       DefaultKeyword,
		DataDir:       DefaultDataDir(),
		LookaheadDays: 2,
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = 2
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables. Secrets are
// expected to arrive this way in scheduled runs.
func (c *Config) applyEnv() {
	if v := os.Getenv("VOLLEYWATCH_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("VOLLEYWATCH_KEYWORD"); v != "" {
		c.Keyword = v
	}
	if v := os.Getenv("VOLLEYWATCH_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
}

// Validate checks that the settings required for a scrape cycle are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Keyword == "" {
		return fmt.Errorf("keyword is required")
	}
	return nil
}

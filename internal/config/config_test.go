package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Keyword != DefaultKeyword {
		t.Errorf("Keyword = %q, expected default", cfg.Keyword)
	}
	if cfg.URL != DefaultURL {
		t.Errorf("URL = %q, expected default", cfg.URL)
	}
	if cfg.LookaheadDays != 2 {
		t.Errorf("LookaheadDays = %d, expected 2", cfg.LookaheadDays)
	}
	if cfg.DataDir == "" {
		t.Error("expected a default data dir")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
url: https://example.com/schedule
keyword: Bellinzona
lookahead_days: 5
telegram:
  bot_token: file-token
  chat_id: "42"
twitter:
  enabled: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.URL != "https://example.com/schedule" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Keyword != "Bellinzona" {
		t.Errorf("Keyword = %q", cfg.Keyword)
	}
	if cfg.LookaheadDays != 5 {
		t.Errorf("LookaheadDays = %d", cfg.LookaheadDays)
	}
	if cfg.Telegram.BotToken != "file-token" || cfg.Telegram.ChatID != "42" {
		t.Errorf("Telegram = %+v", cfg.Telegram)
	}
	if !cfg.Twitter.Enabled {
		t.Error("expected twitter mirror enabled")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("keyword: Bellinzona\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("VOLLEYWATCH_KEYWORD", "Caslano")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Keyword != "Caslano" {
		t.Errorf("Keyword = %q, expected env override", cfg.Keyword)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("BotToken = %q, expected env override", cfg.Telegram.BotToken)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}

	cfg.Keyword = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty keyword")
	}

	cfg = Default()
	cfg.URL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty url")
	}
}

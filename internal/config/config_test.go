package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-100200300")
	t.Setenv("GOOGLE_SHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_ASSISTANT_ID", "asst_123")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SheetName != "Лист1" {
		t.Errorf("sheet name = %q, want Лист1", cfg.SheetName)
	}
	if cfg.HTTPAddr != ":5000" {
		t.Errorf("http addr = %q, want :5000", cfg.HTTPAddr)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q, want development", cfg.Environment)
	}
}

func TestLoadFailsWithoutRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestLoadOptionalNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("HISTORY_LIMIT", "50")
	t.Setenv("ASSISTANT_TIMEOUT_SECONDS", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("history limit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.AssistantTimeout != 90*time.Second {
		t.Errorf("assistant timeout = %v, want 90s", cfg.AssistantTimeout)
	}
}

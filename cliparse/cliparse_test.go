// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "beefmusic.db")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASS", "admin-pass")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "postgres"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "beefmusic.db")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_USER", "")
	t.Setenv("ADMIN_PASS", "")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	setRequiredEnv(t)

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_WebhookFallback(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.test/general")
	t.Setenv("DISCORD_WEBHOOK_PETICIONES", "https://discord.test/peticiones")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.RequestsWebhookURL != "https://discord.test/peticiones" {
		t.Errorf("specific webhook should win, got %q", cfg.RequestsWebhookURL)
	}
	if cfg.SuggestionsWebhookURL != "https://discord.test/general" {
		t.Errorf("expected fallback webhook, got %q", cfg.SuggestionsWebhookURL)
	}
}

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	JWTSecret string
	AdminUser string
	AdminPass string

	// Discord webhooks; each falls back to DISCORD_WEBHOOK_URL, and an
	// empty URL disables that notification entirely.
	RequestsWebhookURL    string
	SuggestionsWebhookURL string
	ReportsWebhookURL     string

	// Optional; the assistant endpoint is disabled without a key.
	OpenAIKey     string
	OpenAIBaseURL string
}

// ParseFlags validates flags and fills the gaps from environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("beefmusic-api", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Admin username (prefer env)")
	fs.StringVar(&cfg.AdminPass, "admin-pass", "", "Admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		return Config{}, errors.New("ADMIN_USER required")
	}

	if cfg.AdminPass == "" {
		cfg.AdminPass = os.Getenv("ADMIN_PASS")
	}
	if cfg.AdminPass == "" {
		return Config{}, errors.New("ADMIN_PASS required")
	}

	// Optional integrations
	fallbackWebhook := os.Getenv("DISCORD_WEBHOOK_URL")
	cfg.RequestsWebhookURL = envOr("DISCORD_WEBHOOK_PETICIONES", fallbackWebhook)
	cfg.SuggestionsWebhookURL = envOr("DISCORD_WEBHOOK_SUGERENCIAS", fallbackWebhook)
	cfg.ReportsWebhookURL = envOr("DISCORD_WEBHOOK_REPORTES", fallbackWebhook)

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

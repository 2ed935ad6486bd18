// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SecretKey         []byte
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	TokenTTL          time.Duration
	ContactWindow     time.Duration
	ListenAddr        string
	DBPath            string
	AllowedOrigins    []string
	ResendAPIKey      string
	EmailFrom         string
	EmailTo           string
	GitHubToken       string
	SyncInterval      time.Duration
}

// HasEmailConfig returns true when both the Resend API key and the recipient
// address are set. Used by the composition root to decide whether to wire a
// real notifier or the no-op one.
func (c *Config) HasEmailConfig() bool {
	return c.ResendAPIKey != "" && c.EmailTo != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// PORTFOLIO_SECRET_KEY (min 32 bytes) and one of PORTFOLIO_ADMIN_PASSWORD or
// PORTFOLIO_ADMIN_PASSWORD_HASH (bcrypt) are required; the hash takes priority
// when both are set. Optional variables with defaults: PORTFOLIO_ADMIN_USERNAME
// (admin), PORTFOLIO_TOKEN_TTL (30m), PORTFOLIO_CONTACT_WINDOW (5m),
// PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080), PORTFOLIO_DB_PATH (portfolio.db),
// PORTFOLIO_ALLOWED_ORIGINS (http://localhost:3000), PORTFOLIO_EMAIL_FROM
// (onboarding@resend.dev), PORTFOLIO_SYNC_INTERVAL (6h).
func Load() (*Config, error) {
	secret := os.Getenv("PORTFOLIO_SECRET_KEY")
	if len(secret) < 32 {
		return nil, fmt.Errorf("PORTFOLIO_SECRET_KEY must be at least 32 bytes, got %d", len(secret))
	}

	username := os.Getenv("PORTFOLIO_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	password := os.Getenv("PORTFOLIO_ADMIN_PASSWORD")
	passwordHash := os.Getenv("PORTFOLIO_ADMIN_PASSWORD_HASH")
	if password == "" && passwordHash == "" {
		return nil, fmt.Errorf("one of PORTFOLIO_ADMIN_PASSWORD or PORTFOLIO_ADMIN_PASSWORD_HASH must be set")
	}
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_ADMIN_PASSWORD_HASH is not a valid bcrypt hash: %w", err)
		}
	}

	tokenTTL := 30 * time.Minute
	if v, ok := os.LookupEnv("PORTFOLIO_TOKEN_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_TOKEN_TTL has invalid duration %q: %w", v, err)
		}
		tokenTTL = parsed
	}

	contactWindow := 5 * time.Minute
	if v, ok := os.LookupEnv("PORTFOLIO_CONTACT_WINDOW"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_CONTACT_WINDOW has invalid duration %q: %w", v, err)
		}
		contactWindow = parsed
	}

	syncInterval := 6 * time.Hour
	if v, ok := os.LookupEnv("PORTFOLIO_SYNC_INTERVAL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_SYNC_INTERVAL has invalid duration %q: %w", v, err)
		}
		syncInterval = parsed
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("PORTFOLIO_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "portfolio.db"
	if v, ok := os.LookupEnv("PORTFOLIO_DB_PATH"); ok {
		dbPath = v
	}

	origins := []string{"http://localhost:3000"}
	if v, ok := os.LookupEnv("PORTFOLIO_ALLOWED_ORIGINS"); ok && v != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	emailFrom := "onboarding@resend.dev"
	if v, ok := os.LookupEnv("PORTFOLIO_EMAIL_FROM"); ok && v != "" {
		emailFrom = v
	}

	return &Config{
		SecretKey:         []byte(secret),
		AdminUsername:     username,
		AdminPassword:     password,
		AdminPasswordHash: passwordHash,
		TokenTTL:          tokenTTL,
		ContactWindow:     contactWindow,
		ListenAddr:        listenAddr,
		DBPath:            dbPath,
		AllowedOrigins:    origins,
		ResendAPIKey:      os.Getenv("PORTFOLIO_RESEND_API_KEY"),
		EmailFrom:         emailFrom,
		EmailTo:           os.Getenv("PORTFOLIO_EMAIL_TO"),
		GitHubToken:       os.Getenv("PORTFOLIO_GITHUB_TOKEN"),
		SyncInterval:      syncInterval,
	}, nil
}

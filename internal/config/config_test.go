package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// allConfigKeys lists every PORTFOLIO_ env var that Load() reads.
var allConfigKeys = []string{
	"PORTFOLIO_SECRET_KEY",
	"PORTFOLIO_ADMIN_USERNAME",
	"PORTFOLIO_ADMIN_PASSWORD",
	"PORTFOLIO_ADMIN_PASSWORD_HASH",
	"PORTFOLIO_TOKEN_TTL",
	"PORTFOLIO_CONTACT_WINDOW",
	"PORTFOLIO_SYNC_INTERVAL",
	"PORTFOLIO_LISTEN_ADDR",
	"PORTFOLIO_DB_PATH",
	"PORTFOLIO_ALLOWED_ORIGINS",
	"PORTFOLIO_RESEND_API_KEY",
	"PORTFOLIO_EMAIL_FROM",
	"PORTFOLIO_EMAIL_TO",
	"PORTFOLIO_GITHUB_TOKEN",
}

// isolateConfigEnv saves and unsets all PORTFOLIO_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	t.Setenv("PORTFOLIO_ADMIN_USERNAME", "eric")
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")
	t.Setenv("PORTFOLIO_TOKEN_TTL", "1h")
	t.Setenv("PORTFOLIO_CONTACT_WINDOW", "10m")
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PORTFOLIO_DB_PATH", "/tmp/test.db")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []byte(testSecret), cfg.SecretKey)
	assert.Equal(t, "eric", cfg.AdminUsername)
	assert.Equal(t, "hunter2hunter2", cfg.AdminPassword)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.ContactWindow)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.ContactWindow)
	assert.Equal(t, 6*time.Hour, cfg.SyncInterval)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "onboarding@resend.dev", cfg.EmailFrom)
}

func TestLoad_MissingSecretKey(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")

	_, err := Load()
	assert.ErrorContains(t, err, "PORTFOLIO_SECRET_KEY")
}

func TestLoad_ShortSecretKey(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", "too-short")
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")

	_, err := Load()
	assert.ErrorContains(t, err, "at least 32 bytes")
}

func TestLoad_MissingPassword(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)

	_, err := Load()
	assert.ErrorContains(t, err, "PORTFOLIO_ADMIN_PASSWORD")
}

func TestLoad_InvalidPasswordHash(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD_HASH", "not-a-bcrypt-hash")

	_, err := Load()
	assert.ErrorContains(t, err, "bcrypt")
}

func TestLoad_ValidPasswordHash(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	// bcrypt hash of "password" with cost 10.
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.AdminPasswordHash)
}

func TestLoad_InvalidDuration(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")
	t.Setenv("PORTFOLIO_TOKEN_TTL", "not-a-duration")

	_, err := Load()
	assert.ErrorContains(t, err, "PORTFOLIO_TOKEN_TTL")
}

func TestLoad_AllowedOrigins(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", testSecret)
	t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "hunter2hunter2")
	t.Setenv("PORTFOLIO_ALLOWED_ORIGINS", "https://eric.dev, https://www.eric.dev ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://eric.dev", "https://www.eric.dev"}, cfg.AllowedOrigins)
}

func TestHasEmailConfig(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasEmailConfig())

	cfg.ResendAPIKey = "re_test"
	assert.False(t, cfg.HasEmailConfig())

	cfg.EmailTo = "me@example.com"
	assert.True(t, cfg.HasEmailConfig())
}

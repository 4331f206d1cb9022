package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load calls log.Fatal when auth settings are missing, so every test must
// provide the required trio.
func setRequiredEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$12$fakehashfortestsonly")
}

// TestLoad_Defaults verifies the documented defaults with a minimal env.
func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "zhyrafyk", cfg.MongoDatabase)
	assert.Equal(t, "news", cfg.NewsCollection)
	assert.Equal(t, "survey_votes", cfg.VoteCollection)
	assert.Equal(t, "survey_responses", cfg.ResponseCollection)
	assert.Equal(t, "failed_notifications", cfg.FailedNotificationCollection)
	assert.Equal(t, "Europe/Kyiv", cfg.Timezone)
	assert.Equal(t, "zhyrafyk-admin", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.TelegramTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.NotNil(t, cfg.ServerLog)
}

// TestLoad_Overrides verifies env overrides land in the right fields.
func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("MONGO_DB", "parkdev")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("ADMIN_COOKIE_SECURE", "true")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_IDS", "100, 200 ,,300")
	t.Setenv("API_ALLOWED_ORIGINS", "https://zhyrafyk.ua,https://admin.zhyrafyk.ua")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "parkdev", cfg.MongoDatabase)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "bot-token", cfg.TelegramBotToken)
	assert.Equal(t, []string{"100", "200", "300"}, cfg.TelegramChatIDs)
	assert.Equal(t, []string{"https://zhyrafyk.ua", "https://admin.zhyrafyk.ua"}, cfg.AllowedOrigins)
}

// TestLoad_AuthSecrets verifies the required auth values are carried over.
func TestLoad_AuthSecrets(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	require.Equal(t, []byte("test-secret"), cfg.JWTSecret)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "$2a$12$fakehashfortestsonly", cfg.AdminPasswordHash)
}

// TestParseList_Fallback verifies empty or blank lists keep the fallback.
func TestParseList_Fallback(t *testing.T) {
	t.Setenv("TEST_LIST", "")
	assert.Equal(t, []string{"x"}, parseList("TEST_LIST", []string{"x"}))

	t.Setenv("TEST_LIST", " , ,")
	assert.Equal(t, []string{"x"}, parseList("TEST_LIST", []string{"x"}))

	t.Setenv("TEST_LIST", "a,b")
	assert.Equal(t, []string{"a", "b"}, parseList("TEST_LIST", nil))
}

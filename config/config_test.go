package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3003", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "admin", cfg.Admin.Phone)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Empty(t, cfg.Telegram.BotToken)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/luxe")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "chat-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres://u:p@db:5432/luxe", cfg.Database.DSN())
	assert.Equal(t, "bot-token", cfg.Telegram.BotToken)
	assert.Equal(t, "chat-1", cfg.Telegram.ChatID)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "real-secret", cfg.JWT.Secret)
}

func TestDatabaseDSNFromFields(t *testing.T) {
	dsn := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "postgres", DBName: "luxe", SSLMode: "disable",
	}.DSN()
	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=luxe port=5432 sslmode=disable", dsn)
}

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SECRET", "HTTP_PORT", "DATABASE_DSN", "TOKEN_TTL", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "SEED_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()

	assert.Equal(t, "dev_secret", c.Secret)
	assert.Equal(t, "5000", c.HTTPPort)
	assert.Equal(t, "jotter.db", c.DatabaseDSN)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Empty(t, c.SeedFile)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/jotter")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SEED_FILE", "seed.csv")

	c := Load()

	assert.Equal(t, "s3cr3t", c.Secret)
	assert.Equal(t, "8081", c.HTTPPort)
	assert.Equal(t, "postgres://u:p@db:5432/jotter", c.DatabaseDSN)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "seed.csv", c.SeedFile)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("TOKEN_TTL", "-5m")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")

	c := Load()

	assert.Equal(t, "5000", c.HTTPPort)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadClient(t *testing.T) {
	t.Setenv("NOTES_API", "http://notes.test:9000/")
	t.Setenv("NOTES_TOKEN_FILE", "/tmp/tok")

	c := LoadClient()

	assert.Equal(t, "http://notes.test:9000", c.APIURL)
	assert.Equal(t, "/tmp/tok", c.TokenFile)
}

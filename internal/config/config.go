package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Secret         string
	DatabaseDSN    string
	HTTPPort       string
	TokenTTL       time.Duration
	AllowedOrigins []string
	LogLevel       slog.Level
	LogFormat      string
	SeedFile       string
}

// Load reads configuration from environment variables with reasonable defaults.
// Malformed values are reported on the default logger and replaced by their
// defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "5000"
	}
	if _, err := strconv.Atoi(port); err != nil {
		slog.Warn("invalid HTTP_PORT, defaulting to 5000", "value", port)
		port = "5000"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "jotter.db"
	}

	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		} else {
			slog.Warn("invalid TOKEN_TTL, defaulting to 1h", "value", v)
		}
	}

	origins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = splitList(v)
	}

	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("invalid LOG_LEVEL, defaulting to info", "value", v)
			level = slog.LevelInfo
		}
	}

	format := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if format != "json" && format != "text" {
		format = "text"
	}

	return Config{
		Secret:         secret,
		DatabaseDSN:    dsn,
		HTTPPort:       port,
		TokenTTL:       ttl,
		AllowedOrigins: origins,
		LogLevel:       level,
		LogFormat:      format,
		SeedFile:       os.Getenv("SEED_FILE"),
	}
}

// ClientConfig is read by notesctl.
type ClientConfig struct {
	APIURL    string
	TokenFile string
}

// LoadClient reads the notesctl settings. The token file defaults to a path
// under the user's config directory.
func LoadClient() ClientConfig {
	api := os.Getenv("NOTES_API")
	if api == "" {
		api = "http://localhost:5000"
	}

	tokenFile := os.Getenv("NOTES_TOKEN_FILE")
	if tokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		tokenFile = filepath.Join(dir, "jotter", "token")
	}

	return ClientConfig{APIURL: strings.TrimRight(api, "/"), TokenFile: tokenFile}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

package config

import (
	"os"
	"strings"
)

type Config struct {
	Addr           string
	RedisAddr      string
	DBPath         string
	AllowedOrigins []string
}

// Load reads the configuration from the environment, falling back to
// defaults suitable for local development.
func Load() *Config {
	cfg := &Config{
		Addr:      ":5000",
		RedisAddr: "localhost:6379",
		DBPath:    "waveline.db",
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg
}

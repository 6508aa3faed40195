package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	defaultEnv      = "development"
	defaultDBPath   = "./costboard.db"
	defaultPort     = "8080"
	defaultLogLevel = "info"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env         string
	DBPath      string
	Port        string
	CatalogFile string
	LogLevel    string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		log.Warn().Err(err).Msg("could not read .env")
	}

	cfg := Config{
		Env:         strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))),
		DBPath:      os.Getenv("DB_PATH"),
		Port:        os.Getenv("PORT"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		LogLevel:    strings.ToLower(os.Getenv("LOG_LEVEL")),
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if cfg.CatalogFile == "" && !cfg.IsDev() {
		log.Warn().Msg("CATALOG_FILE is not set; seeding the built-in catalog")
	}

	return cfg
}

// IsDev reports whether the process runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

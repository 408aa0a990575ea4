package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	TemplatesDir string
	OutputDir    string

	CatalogSeedPath string

	SearchLimit  int
	SuggestLimit int

	DedupeAutoExport bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "laudos.db")),
		TemplatesDir: getEnv("TEMPLATES_DIR", filepath.Join(cwd, "data", "modelos")),
		OutputDir:    getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		CatalogSeedPath: getEnv("CATALOG_SEED_PATH", ""),

		SearchLimit:  getEnvInt("SEARCH_LIMIT", 50),
		SuggestLimit: getEnvInt("SUGGEST_LIMIT", 10),

		DedupeAutoExport: getEnvBool("DEDUPE_AUTO_EXPORT", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	// MaxTurns is the number of answers collected before the interview
	// switches to profile extraction.
	MaxTurns int

	StorageBackend string // "memory", "sqlite" o "firestore"
	SQLitePath     string
	UseMockLLM     bool // true = use mock even on GCP

	// Basic auth for the API routes. Both empty = gate disabled (dev).
	AuthUser string
	AuthPass string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("PERSONA_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("PERSONA_PORT", "8080"),

		GCPProjectID: getEnv("PERSONA_GCP_PROJECT", ""),
		GCPLocation:  getEnv("PERSONA_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("PERSONA_MODEL_NAME", "gemini-2.5-flash"),

		MaxTurns: getIntEnv("PERSONA_MAX_TURNS", 10),

		StorageBackend: getEnv("PERSONA_STORAGE_BACKEND", "memory"),
		SQLitePath:     getEnv("PERSONA_SQLITE_PATH", "persona.db"),
		UseMockLLM:     getBoolEnv("PERSONA_USE_MOCK_LLM", mode == ModeLocal),

		AuthUser: getEnv("PERSONA_AUTH_USER", ""),
		AuthPass: getEnv("PERSONA_AUTH_PASS", ""),
	}

	// Minimal validation
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("PERSONA_GCP_PROJECT must be set in gcp mode")
	}
	if cfg.MaxTurns <= 0 {
		log.Fatal("PERSONA_MAX_TURNS must be positive")
	}

	return cfg
}

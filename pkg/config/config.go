package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	ModelDir    string
	SkillsFile  string
	TopN        int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ModelDir:      getEnv("MODEL_DIR", "models"),
		SkillsFile:    os.Getenv("SKILLS_FILE"),
		TopN:          getEnvInt("TOP_N", 3),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "screening-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		LogJSON:       getEnvBool("LOG_JSON", false),
		LogDebug:      getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

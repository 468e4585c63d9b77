package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultPort                 = "8080"
	DefaultTokenLifetimeSeconds = 3600
)

type Config struct {
	Env                  string
	Port                 string
	DBURL                string
	JWTSigningSecret     string
	TokenLifetimeSeconds int
	GoogleClientID       string
	GoogleClientSecret   string
	GoogleRedirectURI    string
}

func Load() *Config {
	return &Config{
		Env:                  getEnv("ENV", "development"),
		Port:                 getEnv("PORT", DefaultPort),
		DBURL:                mustGetEnv("DB_URL"),
		JWTSigningSecret:     mustGetEnv("JWT_SIGNING_SECRET"),
		TokenLifetimeSeconds: getEnvAsInt("TOKEN_LIFETIME_SECONDS", DefaultTokenLifetimeSeconds),
		GoogleClientID:       mustGetEnv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   mustGetEnv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:    mustGetEnv("GOOGLE_REDIRECT_URI"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

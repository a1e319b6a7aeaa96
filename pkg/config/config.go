package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
	Cache  CacheConfig
	Themes ThemesConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout time.Duration
}

type GitHubConfig struct {
	Token  string
	APIURL string
}

type CacheConfig struct {
	TTL time.Duration
}

type ThemesConfig struct {
	File string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Mode:           getEnv("GIN_MODE", "release"),
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 15),
			RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT", 10)) * time.Second,
		},
		GitHub: GitHubConfig{
			Token:  getEnv("GITHUB_TOKEN", ""),
			APIURL: getEnv("GITHUB_API_URL", ""),
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvAsInt("CACHE_TTL", 3600)) * time.Second,
		},
		Themes: ThemesConfig{
			File: getEnv("THEMES_FILE", ""),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value.
// Non-positive values fall back to the default.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

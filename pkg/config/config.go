package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	GitHub    GitHubConfig
	Portfolio PortfolioConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	// Username is the GitHub account whose public profile and
	// repositories are shown. Required.
	Username string
	// Token is optional; unauthenticated requests work but share the
	// anonymous rate limit.
	Token string
}

type PortfolioConfig struct {
	// MaxProjects caps how many cards are rendered in one pass.
	MaxProjects int
	// StaggerDelayMS is the per-card entrance animation delay.
	StaggerDelayMS int
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
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		GitHub: GitHubConfig{
			Username: getEnv("GITHUB_USERNAME", ""),
			Token:    getEnv("GITHUB_TOKEN", ""),
		},
		Portfolio: PortfolioConfig{
			MaxProjects:    getEnvAsInt("MAX_PROJECTS", 12),
			StaggerDelayMS: getEnvAsInt("STAGGER_DELAY_MS", 100),
		},
	}

	if AppConfig.GitHub.Username == "" {
		return fmt.Errorf("GITHUB_USERNAME is required")
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

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

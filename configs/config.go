package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "3000"
	defaultEnvironment = "development"
)

type AppConfig struct {
	DatabaseURL string
	Port        string
	Environment string
}

var (
	loadEnvOnce sync.Once
	envFileErr  error
)

// LoadEnvFile reads .env at most once and reports why it could not. A missing
// file is not fatal: the process environment is used as is.
func LoadEnvFile() error {
	loadEnvOnce.Do(func() {
		envFileErr = godotenv.Load(".env")
	})
	return envFileErr
}

func Config(key string) string {
	LoadEnvFile()
	return os.Getenv(key)
}

func Load() *AppConfig {
	LoadEnvFile()

	return &AppConfig{
		DatabaseURL: os.Getenv("URL_BD"),
		Port:        getEnv("PORT", defaultPort),
		Environment: getEnv("APP_ENV", defaultEnvironment),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strings"
)

// Config keeps runtime settings for the server, read from the
// environment once at startup.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables. The token
// signing secret has no usable default, so its absence is an error the
// caller is expected to treat as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: GetEnvAsString("SERVER_PORT", "8080"),

		DBHost:     GetEnvAsString("DB_HOST", "localhost"),
		DBPort:     GetEnvAsString("DB_PORT", "5432"),
		DBUser:     GetEnvAsString("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     GetEnvAsString("DB_NAME", "tasks"),
		DBSSLMode:  GetEnvAsString("DB_SSLMODE", "disable"),

		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Package config loads startup settings from the environment.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every startup setting. It is built once in main and threaded
// down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8080"`
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*"`
	UploadDir      string        `env:"UPLOAD_DIR" envDefault:"uploads"`
}

// Load reads an optional .env file and parses the process environment.
// A missing JWT_SECRET or DATABASE_URL fails here, before anything starts.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

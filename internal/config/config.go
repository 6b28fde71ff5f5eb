package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env       string `env:"APP_ENV" envDefault:"dev"`
	HTTPPort  string `env:"HTTP_PORT" envDefault:"5000"`
	MongoURI  string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB   string `env:"MONGO_DB" envDefault:"communitywatch"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"changeme-secret"`
	RateRPS   int    `env:"RATE_RPS" envDefault:"100"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

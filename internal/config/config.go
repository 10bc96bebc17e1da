package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBURL    string `env:"DB_URL,required"`
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Empty means the embedded type chart.
	TypeChartPath string `env:"TYPE_CHART_PATH"`

	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"24h"`
	DefaultLevel    int           `env:"DEFAULT_LEVEL" envDefault:"50"`
}

// Load reads .env files (if any) into the environment and parses Config from it.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	// a missing .env is fine, deployments set real env vars
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultLevel < 1 || cfg.DefaultLevel > 100 {
		return Config{}, fmt.Errorf("DEFAULT_LEVEL %d out of range 1-100", cfg.DefaultLevel)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

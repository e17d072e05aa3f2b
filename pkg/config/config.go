package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvProduction = "production"
	EnvLocal      = "local"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string        `envconfig:"APP_ENV" default:"development"`
	Port         int           `envconfig:"PORT" default:"8080"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	SentryDSN    string        `envconfig:"SENTRY_DSN"`
	AllowOrigins string        `envconfig:"ALLOW_ORIGINS"`
	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	RecommendAPI struct {
		ProductionURL  string `envconfig:"RECOMMEND_API_PRODUCTION_URL" default:"https://letterboxd-reccomendation-app-93739ce42474.herokuapp.com"`
		DevelopmentURL string `envconfig:"RECOMMEND_API_DEVELOPMENT_URL" default:"http://localhost:5000"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// RecommendBaseURL picks the recommendation service for the current
// environment. APP_ENV is the only switch.
func (c *Config) RecommendBaseURL() string {
	if c.IsProduction() {
		return c.RecommendAPI.ProductionURL
	}
	return c.RecommendAPI.DevelopmentURL
}

// SlogLevel parses LOG_LEVEL, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

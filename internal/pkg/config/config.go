package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments, security settings
// - default: values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Octo-Capabilities"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-Id"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// CatalogConfig controls the generated availability window of the
// seeded catalog.
type CatalogConfig struct {
	WindowDays int `envconfig:"CATALOG_WINDOW_DAYS" default:"365"`
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "3001",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Catalog: CatalogConfig{
			WindowDays: 30,
		},
	}
}

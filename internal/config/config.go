package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	Env string `validate:"required,oneof=dev prod"`
	Log struct {
		Level  string `validate:"required,oneof=debug info warn error"`
		Format string `validate:"required,oneof=json console"`
	}
	HTTP struct {
		Addr string `validate:"required"`
	}
	// FixturesFile points at a YAML shipment list; empty means the demo set.
	FixturesFile string
	// MetricsTextfile, when set, receives a Prometheus text dump after a CLI run.
	MetricsTextfile string
}

var validate = validator.New()

// Load reads configuration from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	c.Env = getenv("ENV", "prod")
	c.Log.Level = strings.ToLower(getenv("LOG_LEVEL", "info"))
	c.Log.Format = strings.ToLower(getenv("LOG_FORMAT", "json"))
	c.HTTP.Addr = getenv("HTTP_ADDR", ":8080")
	c.FixturesFile = os.Getenv("FIXTURES_FILE")
	c.MetricsTextfile = os.Getenv("METRICS_TEXTFILE")

	if err := validate.Struct(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

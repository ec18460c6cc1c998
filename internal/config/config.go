package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module wires configuration loading into the application container.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewBrandingHolder,
	),
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr  string
	PublicDir string

	LogLevel  string
	LogFormat string

	TracingEnabled bool
	OTLPEndpoint   string
	OTLPProtocol   string
	TraceSampling  float64

	BrandingDir string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "quickdocs"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		PublicDir: getenv("PUBLIC_DIR", "./public"),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "json")),

		TracingEnabled: getenvBool("TRACING_ENABLED", false),
		OTLPEndpoint:   getenv("OTLP_ENDPOINT", "localhost:4317"),
		OTLPProtocol:   strings.ToLower(getenv("OTLP_PROTOCOL", "grpc")),
		TraceSampling:  getenvFloat("TRACE_SAMPLING", 1.0),

		BrandingDir: getenv("BRANDING_DIR", "."),
	}
}

func (c Config) Debug() bool {
	return c.Environment != "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

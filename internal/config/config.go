package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/courtline/milestones/internal/platform/logging"
)

// Config stores runtime configuration for the classifier.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	Workers        int
	PrettyJSON     bool
	OutputDir      string
	LogLevel       logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	workers, err := getEnvAsInt("CLASSIFY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLASSIFY_WORKERS: %w", err)
	}
	if workers < 1 {
		return Config{}, fmt.Errorf("CLASSIFY_WORKERS must be >= 1")
	}

	prettyJSON, err := strconv.ParseBool(getEnv("CLASSIFY_PRETTY_JSON", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLASSIFY_PRETTY_JSON: %w", err)
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "milestones"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		Workers:        workers,
		PrettyJSON:     prettyJSON,
		OutputDir:      strings.TrimSpace(getEnv("CLASSIFY_OUTPUT_DIR", "")),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

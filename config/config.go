package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Record store backends
const (
	BackendSQL    = "sql"
	BackendHTTP   = "http"
	BackendCSV    = "csv"
	BackendMemory = "memory"
)

// Config holds the application configuration
type Config struct {
	UIAddress    string
	APIAddress   string
	Backend      string
	WorkerURL    string
	CSVPath      string
	DatabasePath string
	HTTPTimeout  time.Duration
	LogLevel     string
	UseHTTPS     bool

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		UIAddress:    ":8501",
		APIAddress:   ":8001",
		Backend:      BackendSQL,
		WorkerURL:    "http://localhost:8001",
		CSVPath:      "collection_records.csv",
		DatabasePath: "collection.db",
		HTTPTimeout:  10 * time.Second,
		LogLevel:     "info",
	}
}

// Load reads env files and then the environment. Without envFiles the .env
// of the working directory is read when it exists; files passed explicitly
// must exist.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()
	stringVar(&cfg.UIAddress, "UI_ADDRESS")
	stringVar(&cfg.APIAddress, "API_ADDRESS")
	stringVar(&cfg.Backend, "RECORD_BACKEND")
	stringVar(&cfg.WorkerURL, "WORKER_URL")
	stringVar(&cfg.CSVPath, "CSV_PATH")
	stringVar(&cfg.DatabasePath, "DATABASE_PATH")
	stringVar(&cfg.LogLevel, "LOG_LEVEL")
	stringVar(&cfg.OIDCIssuer, "OIDC_ISSUER")
	stringVar(&cfg.OIDCClientID, "OIDC_CLIENT_ID")
	stringVar(&cfg.OIDCClientSecret, "OIDC_CLIENT_SECRET")
	stringVar(&cfg.OIDCCallbackURL, "OIDC_CALLBACK_URL")

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("USE_HTTPS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid USE_HTTPS %q: %w", v, err)
		}
		cfg.UseHTTPS = b
	}

	return cfg, nil
}

// Validate checks that the selected backend has what it needs
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQL, BackendMemory:
	case BackendHTTP:
		if c.WorkerURL == "" {
			return errors.New("WORKER_URL is required for the http backend")
		}
	case BackendCSV:
		if c.CSVPath == "" {
			return errors.New("CSV_PATH is required for the csv backend")
		}
	default:
		return fmt.Errorf("unknown record backend %q", c.Backend)
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}

	if c.AuthEnabled() && (c.OIDCClientID == "" || c.OIDCClientSecret == "" || c.OIDCCallbackURL == "") {
		return errors.New("OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL are required when OIDC_ISSUER is set")
	}
	return nil
}

// AuthEnabled reports whether OIDC login protects the UI
func (c Config) AuthEnabled() bool {
	return c.OIDCIssuer != ""
}

func stringVar(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds everything a checkout function needs, loaded once in main and
// injected into handlers. The database URL is deliberately not required here:
// a missing or bad DSN surfaces as a server error on the first call, matching
// the per-request connection model.
type Config struct {
	DatabaseURL      string
	PaymentBaseURL   string
	DBTimeout        time.Duration
	RunAddress       string
	MetricsNamespace string
}

const (
	defaultPaymentBaseURL = "https://payment-demo.example.com"
	defaultDBTimeout      = 5 * time.Second
	defaultRunAddress     = ":8080"
)

// Load parses configuration from environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      getString(lookup, "DATABASE_URL", ""),
		PaymentBaseURL:   getString(lookup, "PAYMENT_BASE_URL", defaultPaymentBaseURL),
		DBTimeout:        getDuration(lookup, "DB_TIMEOUT", defaultDBTimeout),
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		MetricsNamespace: getString(lookup, "METRICS_NAMESPACE", ""),
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dbTimeoutStr := cfg.DBTimeout.String()

	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentBaseURL, "payment-base", cfg.PaymentBaseURL, "Base URL for payment redirect links")
	fs.StringVar(&dbTimeoutStr, "db-timeout", dbTimeoutStr, "Per-call database timeout")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "Local HTTP server listen address")
	fs.StringVar(&cfg.MetricsNamespace, "metrics-namespace", cfg.MetricsNamespace, "CloudWatch namespace for order metrics (empty disables)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.DBTimeout, err = time.ParseDuration(dbTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid db timeout: %w", err)
	}
	if cfg.DBTimeout <= 0 {
		cfg.DBTimeout = defaultDBTimeout
	}

	if cfg.PaymentBaseURL == "" {
		cfg.PaymentBaseURL = defaultPaymentBaseURL
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

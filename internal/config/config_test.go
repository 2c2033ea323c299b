package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.PaymentBaseURL != defaultPaymentBaseURL {
		t.Fatalf("unexpected payment base URL: %q", cfg.PaymentBaseURL)
	}
	if cfg.DBTimeout != defaultDBTimeout {
		t.Fatalf("unexpected db timeout: %v", cfg.DBTimeout)
	}
	if cfg.MetricsNamespace != "" {
		t.Fatalf("expected metrics disabled by default, got %q", cfg.MetricsNamespace)
	}
}

func TestLoadFromEnv(t *testing.T) {
	env := map[string]string{
		"DATABASE_URL":      "postgres://checkout:secret@db/orders",
		"PAYMENT_BASE_URL":  "https://pay.example.org",
		"DB_TIMEOUT":        "2s",
		"METRICS_NAMESPACE": "Checkout",
	}
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != env["DATABASE_URL"] {
		t.Fatalf("unexpected database URL: %q", cfg.DatabaseURL)
	}
	if cfg.PaymentBaseURL != "https://pay.example.org" {
		t.Fatalf("unexpected payment base URL: %q", cfg.PaymentBaseURL)
	}
	if cfg.DBTimeout != 2*time.Second {
		t.Fatalf("unexpected db timeout: %v", cfg.DBTimeout)
	}
	if cfg.MetricsNamespace != "Checkout" {
		t.Fatalf("unexpected metrics namespace: %q", cfg.MetricsNamespace)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	env := map[string]string{"DATABASE_URL": "postgres://env"}
	args := []string{"-d", "postgres://flag", "-db-timeout", "500ms"}
	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://flag" {
		t.Fatalf("flag should override env, got %q", cfg.DatabaseURL)
	}
	if cfg.DBTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected db timeout: %v", cfg.DBTimeout)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	if _, err := load([]string{"-db-timeout", "soon"}, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}

func TestLoadNonPositiveTimeoutFallsBack(t *testing.T) {
	cfg, err := load([]string{"-db-timeout", "0s"}, lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBTimeout != defaultDBTimeout {
		t.Fatalf("expected fallback timeout, got %v", cfg.DBTimeout)
	}
}

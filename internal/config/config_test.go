package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("FEED_URL", "")
	t.Setenv("COUNTRY_API_URL", "")
	t.Setenv("CURRENCY_API_URL", "")
	t.Setenv("RATE_CACHE_TTL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("BaseURL default expected 'localhost:8080', got %q", cfg.BaseURL)
	}
	if cfg.FeedURL == "" || cfg.CountryAPIURL == "" || cfg.CurrencyAPIURL == "" {
		t.Fatalf("reporting URL defaults must be non-empty: %q %q %q", cfg.FeedURL, cfg.CountryAPIURL, cfg.CurrencyAPIURL)
	}
	if cfg.RateCacheTTL != 5*time.Minute {
		t.Fatalf("RateCacheTTL default expected 5m, got %s", cfg.RateCacheTTL)
	}
}

func TestNewConfig_EnvWins(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:9090")
	t.Setenv("FEED_URL", "http://feed.local/svc")
	t.Setenv("CURRENCY_ACCESS_KEY", "k-123")
	t.Setenv("RATE_CACHE_TTL", "30s")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:9090" {
		t.Fatalf("BaseURL expected 'example.com:9090', got %q", cfg.BaseURL)
	}
	if cfg.FeedURL != "http://feed.local/svc" {
		t.Fatalf("FeedURL expected from env, got %q", cfg.FeedURL)
	}
	if cfg.CurrencyAccessKey != "k-123" {
		t.Fatalf("CurrencyAccessKey expected 'k-123', got %q", cfg.CurrencyAccessKey)
	}
	if cfg.RateCacheTTL != 30*time.Second {
		t.Fatalf("RateCacheTTL expected 30s, got %s", cfg.RateCacheTTL)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8080
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8080', got %q", cfg.BaseURL)
	}
}

package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	BaseURL     string `env:"BASE_URL"`

	// Reporting settings
	FeedURL           string        `env:"FEED_URL"`
	CountryAPIURL     string        `env:"COUNTRY_API_URL"`
	CurrencyAPIURL    string        `env:"CURRENCY_API_URL"`
	CurrencyAccessKey string        `env:"CURRENCY_ACCESS_KEY"`
	RateCacheTTL      time.Duration `env:"RATE_CACHE_TTL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres), пусто = in-memory")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес HTTP-сервера host:port")
	flag.StringVar(&cfg.FeedURL, "feed-url", cfg.FeedURL, "base URL of the remote product feed")
	flag.StringVar(&cfg.CountryAPIURL, "country-api", cfg.CountryAPIURL, "base URL of the country currency API")
	flag.StringVar(&cfg.CurrencyAPIURL, "currency-api", cfg.CurrencyAPIURL, "base URL of the exchange rate API")
	flag.StringVar(&cfg.CurrencyAccessKey, "currency-key", cfg.CurrencyAccessKey, "access key for the exchange rate API")
	flag.DurationVar(&cfg.RateCacheTTL, "rate-ttl", cfg.RateCacheTTL, "exchange rate cache TTL, 0 disables caching")

	flag.Parse()

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	// Defaults
	if cfg.FeedURL == "" {
		cfg.FeedURL = "https://services.odata.org/V4/Northwind/Northwind.svc"
	}
	if cfg.CountryAPIURL == "" {
		cfg.CountryAPIURL = "https://restcountries.com/v2/name"
	}
	if cfg.CurrencyAPIURL == "" {
		cfg.CurrencyAPIURL = "http://api.currencylayer.com"
	}
	if cfg.RateCacheTTL == 0 {
		cfg.RateCacheTTL = 5 * time.Minute
	}

	return cfg
}

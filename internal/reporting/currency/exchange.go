package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyExchangeService ходит за курсами (currencylayer-совместимый API).
// Ответы кэшируются по базовой валюте: один запрос отдаёт все котировки
// для source, но запись с другой базой кэш не подменяет. TTL задаётся явно,
// ноль отключает кэширование.
type CurrencyExchangeService struct {
	baseURL   string
	accessKey string
	ttl       time.Duration
	http      *http.Client

	mu    sync.Mutex
	cache map[string]cachedQuotes
}

type cachedQuotes struct {
	quotes    map[string]decimal.Decimal
	fetchedAt time.Time
}

func NewCurrencyExchangeService(baseURL, accessKey string, ttl time.Duration) (*CurrencyExchangeService, error) {
	if strings.TrimSpace(accessKey) == "" {
		return nil, fmt.Errorf("access key is empty")
	}
	return &CurrencyExchangeService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
		ttl:       ttl,
		http:      http.DefaultClient,
		cache:     make(map[string]cachedQuotes),
	}, nil
}

type quotesResponse struct {
	Source string                     `json:"source"`
	Quotes map[string]decimal.Decimal `json:"quotes"`
}

// GetCurrencyExchangeRate возвращает курс base → quote.
func (s *CurrencyExchangeService) GetCurrencyExchangeRate(ctx context.Context, baseCurrency, quoteCurrency string) (decimal.Decimal, error) {
	if baseCurrency == "" || quoteCurrency == "" {
		return decimal.Zero, fmt.Errorf("currency pair is incomplete: %q/%q", baseCurrency, quoteCurrency)
	}

	quotes, err := s.quotesFor(ctx, baseCurrency)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := quotes[baseCurrency+quoteCurrency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for pair %s%s", baseCurrency, quoteCurrency)
	}
	return rate, nil
}

func (s *CurrencyExchangeService) quotesFor(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	cached, ok := s.cache[base]
	s.mu.Unlock()
	if ok && s.ttl > 0 && time.Since(cached.fetchedAt) < s.ttl {
		return cached.quotes, nil
	}

	reqURL := fmt.Sprintf("%s/live?access_key=%s&source=%s", s.baseURL, s.accessKey, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("exchange rates for %s: status %d: %s", base, resp.StatusCode, body)
	}

	var qr quotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}

	if s.ttl > 0 {
		s.mu.Lock()
		s.cache[base] = cachedQuotes{quotes: qr.Quotes, fetchedAt: time.Now()}
		s.mu.Unlock()
	}
	return qr.Quotes, nil
}

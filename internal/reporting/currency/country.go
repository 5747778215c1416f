// Package currency — внешние валютные сервисы: страна → валюта и
// валюта → курс. Обычные request/response вызовы без ретраев,
// сбои уходят вызывающему как есть.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// LocalCurrency — валюта страны поставщика.
type LocalCurrency struct {
	CountryName    string
	CurrencyCode   string
	CurrencySymbol string
}

// CountryCurrencyService ходит в справочник стран (restcountries-совместимый).
type CountryCurrencyService struct {
	baseURL string
	http    *http.Client
}

func NewCountryCurrencyService(baseURL string) *CountryCurrencyService {
	return &CountryCurrencyService{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

type countryInfo struct {
	Name       string `json:"name"`
	Currencies []struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
}

// GetLocalCurrencyByCountry возвращает валюту по имени страны.
// Ответ справочника — массив; берётся первая страна и её первая валюта.
func (s *CountryCurrencyService) GetLocalCurrencyByCountry(ctx context.Context, countryName string) (LocalCurrency, error) {
	if countryName == "" {
		return LocalCurrency{}, fmt.Errorf("country name is empty")
	}

	reqURL := s.baseURL + "/" + url.PathEscape(countryName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return LocalCurrency{}, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return LocalCurrency{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return LocalCurrency{}, fmt.Errorf("country lookup %q: status %d: %s", countryName, resp.StatusCode, body)
	}

	var countries []countryInfo
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return LocalCurrency{}, fmt.Errorf("decode country info: %w", err)
	}
	if len(countries) == 0 || len(countries[0].Currencies) == 0 {
		return LocalCurrency{}, fmt.Errorf("no currency info for country %q", countryName)
	}

	return LocalCurrency{
		CountryName:    countries[0].Name,
		CurrencyCode:   countries[0].Currencies[0].Code,
		CurrencySymbol: countries[0].Currencies[0].Symbol,
	}, nil
}

package productreport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Northwind/internal/reporting/currency"
	"Northwind/internal/reporting/feed"
)

// фейковая лента: отдаёт заготовленный JSON и запоминает query-параметры
type fakeFeed struct {
	srv     *httptest.Server
	queries []url.Values
	pages   []string
}

func newFakeFeed(t *testing.T, pages ...string) *fakeFeed {
	t.Helper()
	f := &fakeFeed{pages: pages}
	mux := http.NewServeMux()
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	mux.HandleFunc("/Products", func(w http.ResponseWriter, r *http.Request) {
		f.queries = append(f.queries, r.URL.Query())
		idx := 0
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &idx)
		}
		body := f.pages[idx]
		if idx+1 < len(f.pages) {
			fmt.Fprintf(w, `{"value":%s,"@odata.nextLink":"%s/Products?page=%d"}`, body, f.srv.URL, idx+1)
			return
		}
		fmt.Fprintf(w, `{"value":%s}`, body)
	})
	return f
}

func (f *fakeFeed) client() *feed.Client { return feed.NewClient(f.srv.URL) }

func TestCurrentProducts(t *testing.T) {
	f := newFakeFeed(t,
		`[{"ProductName":"Aniseed Syrup","UnitPrice":10},{"ProductName":"Chai","UnitPrice":18}]`,
		`[{"ProductName":"Chang","UnitPrice":19}]`,
	)

	report, err := NewService(f.client()).CurrentProducts(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, report.Count())
	assert.Equal(t, "Aniseed Syrup", report.Rows[0].Name)
	assert.Equal(t, "Chang", report.Rows[2].Name)
	assert.True(t, report.Rows[2].Price.Equal(decimal.NewFromInt(19)))

	// фильтр и сортировка уходят в ленту
	q := f.queries[0]
	assert.Equal(t, "Discontinued eq false", q.Get("$filter"))
	assert.Equal(t, "ProductName", q.Get("$orderby"))
}

func TestMostExpensive(t *testing.T) {
	f := newFakeFeed(t, `[{"ProductName":"Côte de Blaye","UnitPrice":263.5}]`)
	svc := NewService(f.client())

	report, err := svc.MostExpensive(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count())
	assert.True(t, report.Rows[0].Price.Equal(decimal.RequireFromString("263.5")))

	q := f.queries[0]
	assert.Equal(t, "UnitPrice desc", q.Get("$orderby"))
	assert.Equal(t, "1", q.Get("$top"))

	_, err = svc.MostExpensive(context.Background(), 0)
	assert.Error(t, err)
}

func TestPriceFilters(t *testing.T) {
	f := newFakeFeed(t, `[]`)
	svc := NewService(f.client())
	ctx := context.Background()

	_, err := svc.PriceLessThan(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "UnitPrice lt 20", f.queries[0].Get("$filter"))

	_, err = svc.PriceMoreThan(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, "UnitPrice gt 50", f.queries[1].Get("$filter"))

	_, err = svc.PriceBetween(ctx, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, "UnitPrice ge 10 and UnitPrice le 30", f.queries[2].Get("$filter"))

	_, err = svc.UnitsInStockDeficit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UnitsInStock lt UnitsOnOrder", f.queries[3].Get("$filter"))

	_, err = svc.UnitsInStockProficit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UnitsInStock gt UnitsOnOrder", f.queries[4].Get("$filter"))
}

// первый проход считает среднюю, второй уходит с фильтром "дороже средней"
func TestPriceAboveAverage(t *testing.T) {
	f := newFakeFeed(t, `[{"ProductName":"Chai","UnitPrice":10},{"ProductName":"Chang","UnitPrice":30}]`)

	report, err := NewService(f.client()).PriceAboveAverage(context.Background())
	require.NoError(t, err)

	require.Len(t, f.queries, 2)
	assert.Equal(t, "", f.queries[0].Get("$filter"))
	assert.Equal(t, "UnitPrice gt 20", f.queries[1].Get("$filter"))
	assert.Equal(t, 2, report.Count())
}

func TestPriceAboveAverage_EmptyFeed(t *testing.T) {
	f := newFakeFeed(t, `[]`)

	report, err := NewService(f.client()).PriceAboveAverage(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Count())
	// второй проход не нужен
	assert.Len(t, f.queries, 1)
}

type stubCountries struct {
	byCountry map[string]currency.LocalCurrency
	calls     int
}

func (s *stubCountries) GetLocalCurrencyByCountry(_ context.Context, name string) (currency.LocalCurrency, error) {
	s.calls++
	lc, ok := s.byCountry[name]
	if !ok {
		return currency.LocalCurrency{}, fmt.Errorf("unknown country %q", name)
	}
	return lc, nil
}

type stubRates struct {
	byQuote map[string]decimal.Decimal
}

func (s *stubRates) GetCurrencyExchangeRate(_ context.Context, base, quote string) (decimal.Decimal, error) {
	if base != "USD" {
		return decimal.Zero, fmt.Errorf("unexpected base %q", base)
	}
	rate, ok := s.byQuote[quote]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for %q", quote)
	}
	return rate, nil
}

func TestCurrentProductsWithLocalPrice(t *testing.T) {
	f := newFakeFeed(t, `[
		{"ProductName":"Chai","UnitPrice":18,"Supplier":{"Country":"UK"}},
		{"ProductName":"Chang","UnitPrice":19,"Supplier":{"Country":"Germany"}}
	]`)

	countries := &stubCountries{byCountry: map[string]currency.LocalCurrency{
		"UK":      {CountryName: "United Kingdom", CurrencyCode: "GBP", CurrencySymbol: "£"},
		"Germany": {CountryName: "Germany", CurrencyCode: "EUR", CurrencySymbol: "€"},
	}}
	rates := &stubRates{byQuote: map[string]decimal.Decimal{
		"GBP": decimal.RequireFromString("0.8"),
		"EUR": decimal.RequireFromString("0.9"),
	}}

	report, err := NewService(f.client()).CurrentProductsWithLocalPrice(context.Background(), countries, rates)
	require.NoError(t, err)

	require.Equal(t, 2, report.Count())
	chai := report.Rows[0]
	assert.Equal(t, "UK", chai.Country)
	assert.Equal(t, "£", chai.CurrencySymbol)
	assert.True(t, chai.LocalPrice.Equal(decimal.RequireFromString("14.4")))

	chang := report.Rows[1]
	assert.True(t, chang.LocalPrice.Equal(decimal.RequireFromString("17.1")))
	assert.Equal(t, 2, countries.calls)
}

func TestCurrentProductsWithLocalPrice_CountryFailure(t *testing.T) {
	f := newFakeFeed(t, `[{"ProductName":"Chai","UnitPrice":18,"Supplier":{"Country":"Atlantis"}}]`)

	countries := &stubCountries{byCountry: map[string]currency.LocalCurrency{}}
	rates := &stubRates{byQuote: map[string]decimal.Decimal{}}

	_, err := NewService(f.client()).CurrentProductsWithLocalPrice(context.Background(), countries, rates)
	assert.Error(t, err)
}

// Package productreport собирает отчёты по товарам из удалённой ленты.
// Каждый отчёт жадно накапливает все страницы запроса; сбой любой страницы
// прерывает отчёт целиком.
package productreport

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"Northwind/internal/reporting/currency"
	"Northwind/internal/reporting/feed"
)

// ProductPrice — строка ценового отчёта.
type ProductPrice struct {
	Name  string
	Price decimal.Decimal
}

// ProductLocalPrice — строка отчёта с ценой в валюте страны поставщика.
type ProductLocalPrice struct {
	Name           string
	Price          decimal.Decimal
	Country        string
	LocalPrice     decimal.Decimal
	CurrencySymbol string
}

// Report — итог отчёта: накопленные строки в исходном порядке страниц.
type Report[T any] struct {
	Rows []T
}

func (r Report[T]) Count() int { return len(r.Rows) }

// CountryCurrencyProvider — внешний справочник страна → валюта.
type CountryCurrencyProvider interface {
	GetLocalCurrencyByCountry(ctx context.Context, countryName string) (currency.LocalCurrency, error)
}

// ExchangeRateProvider — внешний источник курсов валют.
type ExchangeRateProvider interface {
	GetCurrencyExchangeRate(ctx context.Context, baseCurrency, quoteCurrency string) (decimal.Decimal, error)
}

// Service строит отчёты поверх клиента ленты.
type Service struct {
	feed *feed.Client
}

func NewService(c *feed.Client) *Service {
	return &Service{feed: c}
}

// feedProduct — проекция строки ленты, нужная отчётам.
type feedProduct struct {
	ProductName  string              `json:"ProductName"`
	UnitPrice    decimal.NullDecimal `json:"UnitPrice"`
	UnitsInStock *int                `json:"UnitsInStock"`
	UnitsOnOrder *int                `json:"UnitsOnOrder"`
	Discontinued bool                `json:"Discontinued"`
	Supplier     struct {
		Country string `json:"Country"`
	} `json:"Supplier"`
}

func (p feedProduct) price() decimal.Decimal {
	if !p.UnitPrice.Valid {
		return decimal.Zero
	}
	return p.UnitPrice.Decimal
}

func toPrices(products []feedProduct) []ProductPrice {
	out := make([]ProductPrice, 0, len(products))
	for _, p := range products {
		out = append(out, ProductPrice{Name: p.ProductName, Price: p.price()})
	}
	return out
}

// CurrentProducts — все неснятые с продажи товары, по имени, все страницы ленты.
func (s *Service) CurrentProducts(ctx context.Context) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     "Discontinued eq false",
		OrderBy:    "ProductName",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// MostExpensive — count самых дорогих товаров.
func (s *Service) MostExpensive(ctx context.Context, count int) (Report[ProductPrice], error) {
	if count <= 0 {
		return Report[ProductPrice]{}, fmt.Errorf("count must be positive, got %d", count)
	}
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     "UnitPrice ne null",
		OrderBy:    "UnitPrice desc",
		Top:        count,
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// PriceLessThan — товары дешевле limit, по убыванию цены.
func (s *Service) PriceLessThan(ctx context.Context, limit int) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     fmt.Sprintf("UnitPrice lt %d", limit),
		OrderBy:    "UnitPrice desc",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// PriceMoreThan — товары дороже limit, по убыванию цены.
func (s *Service) PriceMoreThan(ctx context.Context, limit int) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     fmt.Sprintf("UnitPrice gt %d", limit),
		OrderBy:    "UnitPrice desc",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// PriceBetween — товары с ценой в отрезке [lo, hi].
func (s *Service) PriceBetween(ctx context.Context, lo, hi int) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     fmt.Sprintf("UnitPrice ge %d and UnitPrice le %d", lo, hi),
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// PriceAboveAverage — два прохода: сначала средняя цена по всем товарам,
// затем выборка дороже средней.
func (s *Service) PriceAboveAverage(ctx context.Context) (Report[ProductPrice], error) {
	all, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{Collection: "Products"})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	if len(all) == 0 {
		return Report[ProductPrice]{}, nil
	}

	sum := decimal.Zero
	for _, p := range all {
		sum = sum.Add(p.price())
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(all))))

	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     fmt.Sprintf("UnitPrice gt %s", avg.String()),
		OrderBy:    "UnitPrice",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// UnitsInStockDeficit — товары, у которых остаток меньше заказанного.
func (s *Service) UnitsInStockDeficit(ctx context.Context) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     "UnitsInStock lt UnitsOnOrder",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// UnitsInStockProficit — товары, у которых остаток больше заказанного.
func (s *Service) UnitsInStockProficit(ctx context.Context) (Report[ProductPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{
		Collection: "Products",
		Filter:     "UnitsInStock gt UnitsOnOrder",
	})
	if err != nil {
		return Report[ProductPrice]{}, err
	}
	return Report[ProductPrice]{Rows: toPrices(products)}, nil
}

// CurrentProductsWithLocalPrice дополняет каждый товар валютой страны
// поставщика и ценой в ней. Коллабораторы не умеют батчи, поэтому на каждую
// строку уходит по два последовательных запроса.
func (s *Service) CurrentProductsWithLocalPrice(
	ctx context.Context,
	countries CountryCurrencyProvider,
	rates ExchangeRateProvider,
) (Report[ProductLocalPrice], error) {
	products, err := feed.FetchAllAs[feedProduct](ctx, s.feed, feed.Query{Collection: "Products"})
	if err != nil {
		return Report[ProductLocalPrice]{}, err
	}

	rows := make([]ProductLocalPrice, 0, len(products))
	for _, p := range products {
		info, err := countries.GetLocalCurrencyByCountry(ctx, p.Supplier.Country)
		if err != nil {
			return Report[ProductLocalPrice]{}, fmt.Errorf("local currency for %q: %w", p.Supplier.Country, err)
		}
		rate, err := rates.GetCurrencyExchangeRate(ctx, "USD", info.CurrencyCode)
		if err != nil {
			return Report[ProductLocalPrice]{}, fmt.Errorf("exchange rate USD/%s: %w", info.CurrencyCode, err)
		}
		rows = append(rows, ProductLocalPrice{
			Name:           p.ProductName,
			Price:          p.price(),
			Country:        p.Supplier.Country,
			LocalPrice:     p.price().Mul(rate),
			CurrencySymbol: info.CurrencySymbol,
		})
	}
	return Report[ProductLocalPrice]{Rows: rows}, nil
}

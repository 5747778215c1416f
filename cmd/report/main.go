package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"Northwind/internal/config"
	"Northwind/internal/reporting/currency"
	"Northwind/internal/reporting/feed"
	"Northwind/internal/reporting/productreport"
)

// Консольный запуск отчётов: report <имя-отчёта> [аргументы].
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	// позиционные аргументы после флагов конфига
	args := flag.Args()
	if len(args) < 1 {
		showHelp()
		return
	}

	svc := productreport.NewService(feed.NewClient(cfg.FeedURL))
	ctx := context.Background()

	switch args[0] {
	case "current-products":
		printReport(sugar)(svc.CurrentProducts(ctx))
	case "most-expensive-products":
		n, ok := intArg(args, 1)
		if !ok {
			showHelp()
			return
		}
		printReport(sugar)(svc.MostExpensive(ctx, n))
	case "price-less-then-products":
		n, ok := intArg(args, 1)
		if !ok {
			showHelp()
			return
		}
		printReport(sugar)(svc.PriceLessThan(ctx, n))
	case "price-more-then-products":
		n, ok := intArg(args, 1)
		if !ok {
			showHelp()
			return
		}
		printReport(sugar)(svc.PriceMoreThan(ctx, n))
	case "price-between-products":
		lo, okLo := intArg(args, 1)
		hi, okHi := intArg(args, 2)
		if !okLo || !okHi {
			showHelp()
			return
		}
		printReport(sugar)(svc.PriceBetween(ctx, lo, hi))
	case "price-above-average-products":
		printReport(sugar)(svc.PriceAboveAverage(ctx))
	case "units-in-stock-deficit":
		printReport(sugar)(svc.UnitsInStockDeficit(ctx))
	case "units-in-stock-proficit":
		printReport(sugar)(svc.UnitsInStockProficit(ctx))
	case "current-products-local-prices":
		exchange, err := currency.NewCurrencyExchangeService(cfg.CurrencyAPIURL, cfg.CurrencyAccessKey, cfg.RateCacheTTL)
		if err != nil {
			sugar.Fatalw("exchange service init failed", "error", err)
		}
		countries := currency.NewCountryCurrencyService(cfg.CountryAPIURL)
		report, err := svc.CurrentProductsWithLocalPrice(ctx, countries, exchange)
		if err != nil {
			sugar.Fatalw("report failed", "error", err)
		}
		for _, row := range report.Rows {
			fmt.Printf("%s, %s, %s, %s, %s\n", row.Name, row.Price.StringFixed(2), row.Country, row.LocalPrice.StringFixed(2), row.CurrencySymbol)
		}
	default:
		showHelp()
	}
}

func intArg(args []string, i int) (int, bool) {
	if len(args) <= i {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func printReport(sugar *zap.SugaredLogger) func(productreport.Report[productreport.ProductPrice], error) {
	return func(report productreport.Report[productreport.ProductPrice], err error) {
		if err != nil {
			sugar.Fatalw("report failed", "error", err)
		}
		for _, row := range report.Rows {
			fmt.Printf("%s, %s\n", row.Name, row.Price.StringFixed(2))
		}
	}
}

func showHelp() {
	fmt.Println(`Usage: report <name> [args]
	current-products
	most-expensive-products <count>
	price-less-then-products <price>
	price-more-then-products <price>
	price-between-products <low> <high>
	price-above-average-products
	units-in-stock-deficit
	units-in-stock-proficit
	current-products-local-prices`)
}

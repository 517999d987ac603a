package main

import (
    "context"
    "flag"
    "fmt"
    "log"
    "time"

    "github.com/joho/godotenv"

    "pricecompare/internal/config"
    "pricecompare/internal/httpx"
    "pricecompare/internal/page"
    "pricecompare/internal/price"
    "pricecompare/internal/rates"
    "pricecompare/internal/region"
)

// pricedump probes a single storefront end to end and prints each stage,
// which is the quickest way to tell a layout change from a rate problem.
func main() {
    var (
        regionID string
        cfgPath  string
        timeout  int
    )
    flag.StringVar(&regionID, "region", "us", "storefront id to probe")
    flag.StringVar(&cfgPath, "config", "", "path to config.json (optional)")
    flag.IntVar(&timeout, "timeout", 15, "HTTP timeout seconds")
    flag.Parse()

    _ = godotenv.Load()

    cfg, err := config.Load(cfgPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if timeout > 0 {
        cfg.RequestTimeoutSec = timeout
    }

    entry, ok := region.Lookup(regionID)
    if !ok {
        log.Fatalf("unknown region %q", regionID)
    }
    fmt.Printf("region:   %s (%s, %s format)\n", entry.ID, entry.Currency, entry.Format)
    fmt.Printf("url:      %s\n", entry.URL)

    httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)
    if cfg.UserAgent != "" {
        httpClient.UserAgent = cfg.UserAgent
    }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeoutSec)*time.Second)
    defer cancel()

    text, err := page.New(httpClient).PriceText(ctx, entry.URL)
    if err != nil {
        log.Fatalf("price text: %v", err)
    }
    fmt.Printf("raw text: %q\n", text)

    local, err := price.Parse(entry.Format, text)
    if err != nil {
        log.Fatalf("parse: %v", err)
    }
    fmt.Printf("parsed:   %.2f %s\n", local, entry.Currency)

    table, err := rates.NewClient(
        rates.WithBaseURL(cfg.RatesEndpoint),
        rates.WithHTTPClient(httpClient.HTTP),
    ).Latest(ctx)
    if err != nil {
        log.Fatalf("rates: %v", err)
    }

    usd, err := table.USD(local, entry.Currency)
    if err != nil {
        log.Fatalf("convert: %v (snapshot has %d codes)", err, len(table))
    }
    fmt.Printf("usd:      $%.2f\n", usd)
}

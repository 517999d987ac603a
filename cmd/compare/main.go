package main

import (
    "context"
    "flag"
    "os"
    "time"

    "github.com/joho/godotenv"
    "github.com/rs/zerolog"

    "pricecompare/internal/config"
    "pricecompare/internal/httpx"
    "pricecompare/internal/page"
    "pricecompare/internal/rates"
    "pricecompare/internal/region"
    "pricecompare/internal/resolve"
    "pricecompare/internal/report"
)

func main() {
    var configPath string
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.Parse()

    // .env is optional; real environment variables win.
    _ = godotenv.Load()

    log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
        With().Timestamp().Logger()

    cfg, err := config.Load(configPath)
    if err != nil {
        log.Fatal().Err(err).Msg("config")
    }
    if cfg.Verbose {
        log = log.Level(zerolog.DebugLevel)
    } else {
        log = log.Level(zerolog.InfoLevel)
    }

    httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)
    if cfg.UserAgent != "" {
        httpClient.UserAgent = cfg.UserAgent
    }

    var pages page.Source = page.New(httpClient)
    if cfg.FetchMinIntervalMS > 0 {
        pages = &page.MinInterval{S: pages, Interval: time.Duration(cfg.FetchMinIntervalMS) * time.Millisecond}
    }

    var rateSource rates.Source = rates.NewClient(
        rates.WithBaseURL(cfg.RatesEndpoint),
        rates.WithHTTPClient(httpClient.HTTP),
    )
    if cfg.RatesCacheTTLSec > 0 {
        rateSource = &rates.Cached{S: rateSource, TTL: time.Duration(cfg.RatesCacheTTLSec) * time.Second}
    }

    resolver := &resolve.Resolver{Pages: pages, Rates: rateSource, Log: log}

    results := resolver.Collect(context.Background(), region.Registry())
    report.Render(os.Stdout, results)
}

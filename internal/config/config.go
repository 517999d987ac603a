package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"
)

type Config struct {
    RequestTimeoutSec  int    `json:"request_timeout_sec"`
    UserAgent          string `json:"user_agent"`
    RatesEndpoint      string `json:"rates_endpoint"`
    RatesCacheTTLSec   int    `json:"rates_cache_ttl_sec"`
    FetchMinIntervalMS int    `json:"fetch_min_interval_ms"`
    Verbose            bool   `json:"verbose"`
}

func Default() Config {
    return Config{
        RequestTimeoutSec: 15,
        RatesEndpoint:     "https://open.er-api.com",
        // One run resolves every storefront against a single snapshot;
        // five minutes comfortably covers a run.
        RatesCacheTTLSec: 300,
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.RequestTimeoutSec = x }
    }
    if v := os.Getenv("USER_AGENT"); v != "" { cfg.UserAgent = v }
    if v := os.Getenv("RATES_ENDPOINT"); v != "" { cfg.RatesEndpoint = v }
    if v := os.Getenv("RATES_CACHE_TTL_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.RatesCacheTTLSec = x }
    }
    if v := os.Getenv("FETCH_MIN_INTERVAL_MS"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.FetchMinIntervalMS = x }
    }
    if v := os.Getenv("VERBOSE"); v != "" {
        switch strings.ToLower(v) {
        case "1","true","yes","y": cfg.Verbose = true
        case "0","false","no","n": cfg.Verbose = false
        }
    }
}

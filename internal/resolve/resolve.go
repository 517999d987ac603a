package resolve

import (
    "context"
    "fmt"
    "sort"

    "github.com/rs/zerolog"

    "pricecompare/internal/page"
    "pricecompare/internal/price"
    "pricecompare/internal/rates"
    "pricecompare/internal/region"
)

// Result is one storefront's listed price normalized to US dollars.
type Result struct {
    Region    string  `json:"region"`
    PriceText string  `json:"price_text"`
    Currency  string  `json:"currency"`
    PriceUSD  float64 `json:"price_usd"`
}

// Resolver turns storefront entries into Results using the external page
// and rate collaborators. Wrap Rates in rates.Cached so every storefront
// in a run converts against the same snapshot.
type Resolver struct {
    Pages page.Source
    Rates rates.Source
    Log   zerolog.Logger
}

// Resolve fetches, parses and converts a single storefront's price. The
// first failing step wins; the error stays scoped to this storefront.
func (r *Resolver) Resolve(ctx context.Context, e region.Entry) (Result, error) {
    text, err := r.Pages.PriceText(ctx, e.URL)
    if err != nil {
        return Result{}, err
    }
    local, err := price.Parse(e.Format, text)
    if err != nil {
        return Result{}, err
    }
    if local <= 0 {
        return Result{}, fmt.Errorf("parse %q: non-positive price: %w", text, price.ErrUnparseable)
    }
    table, err := r.Rates.Latest(ctx)
    if err != nil {
        return Result{}, err
    }
    usd, err := table.USD(local, e.Currency)
    if err != nil {
        return Result{}, err
    }
    return Result{Region: e.ID, PriceText: text, Currency: e.Currency, PriceUSD: usd}, nil
}

// Collect resolves every storefront in registry order and returns the
// successes sorted ascending by USD price. A failed storefront is logged
// with its cause and skipped; it never aborts the run.
func (r *Resolver) Collect(ctx context.Context, regions []region.Entry) []Result {
    out := make([]Result, 0, len(regions))
    for _, e := range regions {
        res, err := r.Resolve(ctx, e)
        if err != nil {
            r.Log.Warn().Str("region", e.ID).Str("currency", e.Currency).Err(err).Msg("storefront skipped")
            continue
        }
        r.Log.Debug().Str("region", e.ID).Str("price", res.PriceText).Float64("usd", res.PriceUSD).Msg("storefront resolved")
        out = append(out, res)
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].PriceUSD < out[j].PriceUSD })
    r.Log.Info().Int("resolved", len(out)).Int("configured", len(regions)).Msg("aggregation done")
    return out
}

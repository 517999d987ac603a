package rates

import (
    "errors"
    "fmt"
    "sort"

    "github.com/shopspring/decimal"
)

// ErrUnavailable means no snapshot could be produced at all.
var ErrUnavailable = errors.New("exchange rates unavailable")

// ErrMissingRate means the snapshot holds no usable rate for a currency code.
var ErrMissingRate = errors.New("no exchange rate for currency")

// Table is an immutable USD-based snapshot: currency code -> units per 1 USD.
type Table map[string]float64

// USD converts a local amount to US dollars, rounded to cents.
func (t Table) USD(local float64, code string) (float64, error) {
    rate, ok := t[code]
    if !ok || rate <= 0 {
        return 0, fmt.Errorf("%w: %s", ErrMissingRate, code)
    }
    usd := decimal.NewFromFloat(local).Div(decimal.NewFromFloat(rate))
    v, _ := usd.Round(2).Float64()
    return v, nil
}

// Codes returns the currency codes present in the snapshot, sorted.
func (t Table) Codes() []string {
    out := make([]string, 0, len(t))
    for c := range t {
        out = append(out, c)
    }
    sort.Strings(out)
    return out
}

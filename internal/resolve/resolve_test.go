package resolve

import (
    "context"
    "errors"
    "testing"

    "github.com/rs/zerolog"

    "pricecompare/internal/price"
    "pricecompare/internal/rates"
    "pricecompare/internal/region"
)

// pagesByURL serves canned price text per URL.
type pagesByURL map[string]string

func (p pagesByURL) PriceText(ctx context.Context, url string) (string, error) {
    if text, ok := p[url]; ok {
        return text, nil
    }
    return "", errors.New("fetch failed")
}

type tableSource struct {
    table rates.Table
    err   error
}

func (s tableSource) Latest(ctx context.Context) (rates.Table, error) {
    return s.table, s.err
}

func entry(id, currency string, f price.Format) region.Entry {
    return region.Entry{ID: id, Currency: currency, Format: f, URL: "https://store.test/" + id}
}

func newResolver(pages pagesByURL, src tableSource) *Resolver {
    return &Resolver{Pages: pages, Rates: src, Log: zerolog.Nop()}
}

func TestResolve_HappyPath(t *testing.T) {
    r := newResolver(
        pagesByURL{"https://store.test/de": "1.899,00 €"},
        tableSource{table: rates.Table{"EUR": 0.95}},
    )
    got, err := r.Resolve(context.Background(), entry("de", "EUR", price.FormatEuropean))
    if err != nil {
        t.Fatalf("Resolve: %v", err)
    }
    want := Result{Region: "de", PriceText: "1.899,00 €", Currency: "EUR", PriceUSD: 1998.95}
    if got != want {
        t.Fatalf("Resolve = %+v, want %+v", got, want)
    }
}

func TestResolve_FailureClasses(t *testing.T) {
    pages := pagesByURL{
        "https://store.test/bad":  "Currently unavailable",
        "https://store.test/kr":   "₩1,590,000",
        "https://store.test/zero": "$0.00",
    }
    cases := []struct {
        name string
        e    region.Entry
        src  tableSource
        want error
    }{
        {"fetch failure", entry("xx", "USD", price.FormatPlain), tableSource{table: rates.Table{"USD": 1}}, nil},
        {"parse failure", entry("bad", "USD", price.FormatPlain), tableSource{table: rates.Table{"USD": 1}}, price.ErrUnparseable},
        {"rates unavailable", entry("kr", "KRW", price.FormatDigits), tableSource{err: rates.ErrUnavailable}, rates.ErrUnavailable},
        {"missing rate", entry("kr", "KRW", price.FormatDigits), tableSource{table: rates.Table{"USD": 1}}, rates.ErrMissingRate},
        {"zero price", entry("zero", "USD", price.FormatPlain), tableSource{table: rates.Table{"USD": 1}}, price.ErrUnparseable},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            r := newResolver(pages, tc.src)
            _, err := r.Resolve(context.Background(), tc.e)
            if err == nil {
                t.Fatal("want error")
            }
            if tc.want != nil && !errors.Is(err, tc.want) {
                t.Fatalf("want %v, got %v", tc.want, err)
            }
        })
    }
}

func TestCollect_SkipsFailuresAndSorts(t *testing.T) {
    pages := pagesByURL{
        "https://store.test/us": "$1,599.00",
        "https://store.test/de": "1.899,00 €",
        "https://store.test/jp": "248,800円（税込）",
        "https://store.test/xx": "not a price",
    }
    src := tableSource{table: rates.Table{"USD": 1, "EUR": 0.95, "JPY": 155.5}}
    r := newResolver(pages, src)

    regions := []region.Entry{
        entry("de", "EUR", price.FormatEuropean),
        entry("us", "USD", price.FormatPlain),
        entry("jp", "JPY", price.FormatDigits),
        entry("xx", "USD", price.FormatPlain), // fetch fails
        entry("yy", "GBP", price.FormatPlain), // fetch fails
    }
    out := r.Collect(context.Background(), regions)

    if len(out) != 3 {
        t.Fatalf("want 3 results, got %d: %+v", len(out), out)
    }
    for i := 1; i < len(out); i++ {
        if out[i].PriceUSD < out[i-1].PriceUSD {
            t.Fatalf("not sorted ascending: %+v", out)
        }
    }
    if out[0].Region != "us" { // 1599.00 < 1600.00 (jp) < 1998.95 (de)
        t.Fatalf("want us cheapest, got %+v", out)
    }
}

func TestCollect_TiesKeepRegistryOrder(t *testing.T) {
    pages := pagesByURL{
        "https://store.test/a": "$1,000.00",
        "https://store.test/b": "2000",
        "https://store.test/c": "not a price",
    }
    src := tableSource{table: rates.Table{"USD": 1, "AED": 2}}
    r := newResolver(pages, src)

    out := r.Collect(context.Background(), []region.Entry{
        entry("a", "USD", price.FormatPlain),
        entry("b", "AED", price.FormatDigits),
        entry("c", "USD", price.FormatPlain),
    })
    if len(out) != 2 {
        t.Fatalf("want 2 results, got %d: %+v", len(out), out)
    }
    if out[0].Region != "a" || out[1].Region != "b" {
        t.Fatalf("stable sort should keep registry order for ties: %+v", out)
    }
    if out[0].PriceUSD != 1000 || out[1].PriceUSD != 1000 {
        t.Fatalf("want both at 1000 USD: %+v", out)
    }
}

func TestCollect_AllFailed(t *testing.T) {
    r := newResolver(pagesByURL{}, tableSource{table: rates.Table{"USD": 1}})
    out := r.Collect(context.Background(), []region.Entry{entry("us", "USD", price.FormatPlain)})
    if len(out) != 0 {
        t.Fatalf("want no results, got %+v", out)
    }
}

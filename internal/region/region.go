package region

import (
    "fmt"

    "pricecompare/internal/price"
)

// Entry describes one storefront: where to fetch, which currency it lists in,
// and which price grammar applies there.
type Entry struct {
    ID       string
    Currency string
    Format   price.Format
    URL      string
}

const productPath = "shop/buy-mac/macbook-air"

// urlOverrides covers storefronts whose page URL deviates from the generic
// country-prefixed template. The US store carries no country segment.
var urlOverrides = map[string]string{
    "us": "https://www.apple.com/" + productPath,
}

func entryURL(id string) string {
    if u, ok := urlOverrides[id]; ok {
        return u
    }
    return fmt.Sprintf("https://www.apple.com/%s/%s", id, productPath)
}

// table is the fixed storefront set. Order only determines pre-sort
// iteration; it carries no ranking meaning.
var table = []struct {
    id       string
    currency string
    format   price.Format
}{
    {"us", "USD", price.FormatPlain},
    {"ca", "CAD", price.FormatPlain},
    {"uk", "GBP", price.FormatPlain},
    {"de", "EUR", price.FormatEuropean},
    {"fr", "EUR", price.FormatEuropean},
    {"it", "EUR", price.FormatEuropean},
    {"es", "EUR", price.FormatEuropean},
    {"nl", "EUR", price.FormatEuropean},
    {"jp", "JPY", price.FormatDigits},
    {"kr", "KRW", price.FormatDigits},
    {"au", "AUD", price.FormatPlain},
    {"ae", "AED", price.FormatPlain},
    {"in", "INR", price.FormatPlain},
    {"sg", "SGD", price.FormatPlain},
}

// Registry returns the configured storefronts in fixed order.
func Registry() []Entry {
    out := make([]Entry, 0, len(table))
    for _, t := range table {
        out = append(out, Entry{ID: t.id, Currency: t.currency, Format: t.format, URL: entryURL(t.id)})
    }
    return out
}

// Lookup returns the entry for a storefront id, if configured.
func Lookup(id string) (Entry, bool) {
    for _, e := range Registry() {
        if e.ID == id {
            return e, true
        }
    }
    return Entry{}, false
}

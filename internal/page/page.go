package page

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "strings"

    "github.com/PuerkitoBio/goquery"

    "pricecompare/internal/httpx"
)

// ErrPriceNotFound means the page loaded but no known selector matched a
// non-empty price element.
var ErrPriceNotFound = errors.New("price element not found")

// Source yields the raw localized price text shown on a product page.
type Source interface {
    PriceText(ctx context.Context, url string) (string, error)
}

// priceSelectors are tried in order; the first selector whose first match
// carries non-empty text wins. A storefront layout change is handled by
// appending the new selector here, not by touching the scan.
var priceSelectors = []string{
    "span.rc-prices-fullprice",
    ".rc-prices-currentprice span",
    `[data-autom="full-price"]`,
}

// Client fetches product pages over HTTP and extracts the listed price text.
type Client struct {
    HTTP *httpx.Client
}

func New(hc *httpx.Client) *Client { return &Client{HTTP: hc} }

func (c *Client) PriceText(ctx context.Context, url string) (string, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
    if err != nil {
        return "", err
    }
    resp, err := c.HTTP.Do(ctx, req)
    if err != nil {
        return "", fmt.Errorf("fetch %s: %w", url, err)
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return "", fmt.Errorf("GET %s -> %d", url, resp.StatusCode)
    }
    doc, err := goquery.NewDocumentFromReader(resp.Body)
    if err != nil {
        return "", fmt.Errorf("parse %s: %w", url, err)
    }
    return FindPrice(doc)
}

// FindPrice scans the ordered selector list and returns the first non-empty
// trimmed match.
func FindPrice(doc *goquery.Document) (string, error) {
    for _, sel := range priceSelectors {
        text := strings.TrimSpace(doc.Find(sel).First().Text())
        if text != "" {
            return text, nil
        }
    }
    return "", ErrPriceNotFound
}

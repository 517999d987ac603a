package report

import (
    "fmt"
    "io"
    "strings"

    "github.com/dustin/go-humanize"
    "github.com/fatih/color"

    "pricecompare/internal/resolve"
)

// bucket is one price-competitiveness tier. upper is the exclusive upper
// ratio bound; the final tier closes at 1 inclusive.
type bucket struct {
    upper float64
    label string
    style *color.Color
}

// buckets run from best deal to premium, colored green through red. Bold
// marks the emphasized tiers.
var buckets = []bucket{
    {0.15, "excellent", color.New(color.FgHiGreen, color.Bold)},
    {0.30, "very good", color.New(color.FgGreen)},
    {0.45, "good", color.New(color.FgCyan, color.Bold)},
    {0.55, "average", color.New(color.FgWhite)},
    {0.65, "slightly expensive", color.New(color.FgYellow, color.Bold)},
    {0.75, "expensive", color.New(color.FgHiYellow)},
    {0.85, "very expensive", color.New(color.FgRed)},
    {1.00, "premium", color.New(color.FgHiRed, color.Bold)},
}

// bucketFor maps a [0,1] ratio to its tier. Bounds are half-open, so a
// ratio sitting exactly on a threshold lands in the higher tier.
func bucketFor(ratio float64) bucket {
    for _, b := range buckets[:len(buckets)-1] {
        if ratio < b.upper {
            return b
        }
    }
    return buckets[len(buckets)-1]
}

// Render writes the ranked comparison to w. Results must already be sorted
// ascending by USD price.
func Render(w io.Writer, results []resolve.Result) {
    if len(results) == 0 {
        fmt.Fprintln(w, "No storefront prices could be resolved.")
        return
    }

    min := results[0].PriceUSD
    max := results[len(results)-1].PriceUSD
    priceRange := max - min

    for i, r := range results {
        ratio := 0.0
        if priceRange > 0 {
            ratio = (r.PriceUSD - min) / priceRange
        }
        b := bucketFor(ratio)

        line := fmt.Sprintf("%2d. %-4s %-24s = $%s USD  [%s]",
            i+1, strings.ToUpper(r.Region), r.PriceText, usdString(r.PriceUSD), b.label)

        var notes []string
        if r.PriceUSD > min {
            notes = append(notes, fmt.Sprintf("+%.1f%% vs lowest", (r.PriceUSD-min)/min*100))
        }
        if i > 0 {
            prev := results[i-1].PriceUSD
            notes = append(notes, fmt.Sprintf("+$%.2f, +%.1f%% vs previous", r.PriceUSD-prev, (r.PriceUSD-prev)/prev*100))
        }
        if len(notes) > 0 {
            line += "  (" + strings.Join(notes, "; ") + ")"
        }
        b.style.Fprintln(w, line)
    }
}

func usdString(v float64) string {
    return humanize.FormatFloat("#,###.##", v)
}

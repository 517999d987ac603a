package price

import (
    "errors"
    "fmt"
    "strconv"
    "strings"
    "unicode"
)

// Format selects the numeric grammar a storefront uses for its price strings.
// The registry assigns one per region; it is never guessed from the text.
type Format int

const (
    // FormatPlain is comma thousands with a dot decimal: "$1,599.00".
    FormatPlain Format = iota
    // FormatEuropean is dot (or space) thousands with a comma decimal: "1.899,00 €".
    FormatEuropean
    // FormatDigits is a bare digit run for currencies displayed without a
    // fractional subunit: "248,800円（税込）".
    FormatDigits
)

func (f Format) String() string {
    switch f {
    case FormatPlain:
        return "plain"
    case FormatEuropean:
        return "european"
    case FormatDigits:
        return "digits"
    }
    return "unknown"
}

// ErrUnparseable means the text did not reduce to a valid number under the
// region's grammar.
var ErrUnparseable = errors.New("price text not in expected format")

// glyphs are the currency marks seen across the configured storefronts.
// Adding a storefront with a new mark means extending this table.
var glyphs = map[rune]bool{
    '$': true,
    '£': true,
    '€': true,
    '¥': true,
    '₹': true,
    '₩': true,
    '₪': true,
    '﷼': true,
}

// Parse converts localized price text into its numeric value under f.
func Parse(f Format, text string) (float64, error) {
    switch f {
    case FormatPlain:
        s := stripMarks(text)
        s = strings.ReplaceAll(s, ",", "")
        return parseNumber(text, s)
    case FormatEuropean:
        s := stripMarks(text)
        s = strings.ReplaceAll(s, ".", "")
        s = strings.ReplaceAll(s, ",", ".")
        return parseNumber(text, s)
    case FormatDigits:
        var b strings.Builder
        for _, r := range text {
            if r >= '0' && r <= '9' { b.WriteRune(r) }
        }
        return parseNumber(text, b.String())
    }
    return 0, fmt.Errorf("format %d: %w", int(f), ErrUnparseable)
}

// stripMarks drops currency glyphs, letters (currency codes, tax notes) and
// whitespace, leaving digits and separators for the grammar rules.
func stripMarks(s string) string {
    var b strings.Builder
    for _, r := range s {
        if glyphs[r] || unicode.IsLetter(r) || unicode.IsSpace(r) {
            continue
        }
        b.WriteRune(r)
    }
    return b.String()
}

func parseNumber(orig, cleaned string) (float64, error) {
    if cleaned == "" {
        return 0, fmt.Errorf("parse %q: %w", orig, ErrUnparseable)
    }
    v, err := strconv.ParseFloat(cleaned, 64)
    if err != nil {
        return 0, fmt.Errorf("parse %q: %w", orig, ErrUnparseable)
    }
    return v, nil
}

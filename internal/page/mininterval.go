package page

import (
    "context"
    "sync"
    "time"
)

// MinInterval wraps a Source and enforces a minimum time between page
// requests, spacing out successive storefront fetches. Callers wait until
// the interval has elapsed since the last request, or return early if the
// context is canceled.
type MinInterval struct {
    S        Source
    Interval time.Duration

    mu   sync.Mutex
    last time.Time
}

func (m *MinInterval) PriceText(ctx context.Context, url string) (string, error) {
    if m.Interval > 0 {
        m.mu.Lock()
        wait := time.Until(m.last.Add(m.Interval))
        m.mu.Unlock()
        if wait > 0 {
            t := time.NewTimer(wait)
            defer t.Stop()
            select {
            case <-ctx.Done():
                return "", ctx.Err()
            case <-t.C:
            }
        }
    }
    text, err := m.S.PriceText(ctx, url)
    if m.Interval > 0 {
        m.mu.Lock()
        m.last = time.Now()
        m.mu.Unlock()
    }
    return text, err
}

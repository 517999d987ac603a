package rates

import (
    "context"
    "sync"
    "time"
)

// Cached memoizes the snapshot from an underlying Source for a TTL, so every
// region resolved within one run converts against the same table.
// When a refresh fails and a previous snapshot exists, the previous snapshot
// is served instead of surfacing the error.
type Cached struct {
    S   Source
    TTL time.Duration

    mu        sync.Mutex
    table     Table
    expiresAt time.Time
}

func (c *Cached) Latest(ctx context.Context) (Table, error) {
    if c.TTL <= 0 {
        return c.S.Latest(ctx)
    }

    c.mu.Lock()
    defer c.mu.Unlock()

    now := time.Now()
    if c.table != nil && now.Before(c.expiresAt) {
        return c.table, nil
    }

    fresh, err := c.S.Latest(ctx)
    if err != nil {
        if c.table != nil {
            return c.table, nil
        }
        return nil, err
    }
    c.table = fresh
    c.expiresAt = now.Add(c.TTL)
    return fresh, nil
}

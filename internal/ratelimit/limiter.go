// Package ratelimit applies fixed-window request ceilings. The counter
// store is an interface so multiple instances can share windows through
// Redis; the default store is in-process and resets on restart.
package ratelimit

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"formloom/internal/httputil"
)

// Store counts hits per key within a fixed window.
type Store interface {
	// Incr adds one hit to key's current window and returns the new count.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// MemoryStore is the in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	count int64
}

// NewMemoryStore builds an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (m *MemoryStore) Incr(_ context.Context, key string, d time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w := m.windows[key]
	if w == nil || now.Sub(w.start) >= d {
		w = &window{start: now}
		m.windows[key] = w
	}
	w.count++
	return w.count, nil
}

// Middleware rejects requests once key's window count exceeds max.
// max <= 0 disables the limit; store errors fail open so a broken Redis
// never takes the API down.
func Middleware(store Store, key string, max int64, windowSize time.Duration) gin.HandlerFunc {
	if max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		n, err := store.Incr(c.Request.Context(), key, windowSize)
		if err != nil {
			log.Printf("rate limit store (%s): %v", key, err)
			c.Next()
			return
		}
		if n > max {
			httputil.Fail(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}

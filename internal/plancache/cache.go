// Package plancache keeps recently computed plans in memory, keyed by a
// digest of the request that produced them.
package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/napolitain/solver-cic/internal/metrics"
	"github.com/napolitain/solver-cic/internal/models"
)

// SchemaVersion is mixed into every key. Increment it when the planner's
// output changes for the same input so stale plans stop matching.
const SchemaVersion = "1"

// Cache is an LRU of solutions with time-based expiration
type Cache struct {
	lru *expirable.LRU[string, *models.Solution]
}

// New creates a cache holding at most size plans for ttl each
func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, *models.Solution](size, nil, ttl),
	}
}

// Key returns the hex SHA-256 of the JSON encoding of req. Map keys are
// sorted by encoding/json so equal requests always share a key.
func Key(req any) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(SchemaVersion))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get retrieves a plan. Returns (nil, false) if missing or expired.
func (c *Cache) Get(key string) (*models.Solution, bool) {
	sol, ok := c.lru.Get(key)
	if !ok {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return sol, true
}

// Set stores a plan
func (c *Cache) Set(key string, sol *models.Solution) {
	c.lru.Add(key, sol)
}

// Len returns the number of cached plans
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge removes every plan
func (c *Cache) Purge() {
	c.lru.Purge()
}

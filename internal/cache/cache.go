// SPDX-License-Identifier: Apache-2.0

// Package cache memoizes extraction reports.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gemaraproj/extract-mcp/internal/extraction"
)

// ReportCache is a thread-safe LRU of reports keyed by the scanned categories
// and a digest of the text. Reports go in and come out as clones, so callers
// still own what they receive.
type ReportCache struct {
	cache *lru.Cache[string, *extraction.Report]
}

// NewReportCache creates a cache holding at most maxItems reports.
func NewReportCache(maxItems int) (*ReportCache, error) {
	c, err := lru.New[string, *extraction.Report](maxItems)
	if err != nil {
		return nil, err
	}
	return &ReportCache{cache: c}, nil
}

// Key derives the cache key for text scanned with registry.
func Key(registry *extraction.Registry, text string) string {
	h := sha256.New()
	for _, c := range registry.Categories() {
		h.Write([]byte(c))
		h.Write([]byte{0})
	}
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ReportCache) Get(key string) (*extraction.Report, bool) {
	report, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return report.Clone(), true
}

func (c *ReportCache) Put(key string, report *extraction.Report) {
	c.cache.Add(key, report.Clone())
}

// Len returns the current number of items in the cache.
func (c *ReportCache) Len() int {
	return c.cache.Len()
}

// Package cache keeps computed facet counts in Redis.
//
// Entries are namespaced by a version counter. Every catalog write bumps the
// counter, which orphans all previous entries; they expire through their TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/redis/go-redis/v9"
)

const versionKey = "facets:version"

type FacetCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFacetCache(client *redis.Client, ttl time.Duration) *FacetCache {
	return &FacetCache{client: client, ttl: ttl}
}

// Get returns the cached facets for f, or nil on a miss, together with the
// key the entry lives under. The key pins the version read here; pass it to
// Set so counts computed before a concurrent write never land under the
// newer version.
func (c *FacetCache) Get(ctx context.Context, f model.ProductFilter) (*model.Facets, string, error) {
	key, err := c.key(ctx, f)
	if err != nil {
		return nil, "", err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, key, nil
	}
	if err != nil {
		return nil, key, fmt.Errorf("read facet cache: %w", err)
	}

	var facets model.Facets
	if err := json.Unmarshal(raw, &facets); err != nil {
		return nil, key, fmt.Errorf("decode facet cache: %w", err)
	}
	return &facets, key, nil
}

// Set stores facets under a key returned by Get.
func (c *FacetCache) Set(ctx context.Context, key string, facets *model.Facets) error {
	raw, err := json.Marshal(facets)
	if err != nil {
		return fmt.Errorf("encode facets: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write facet cache: %w", err)
	}
	return nil
}

// Invalidate bumps the version counter so every cached entry becomes stale.
func (c *FacetCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("bump facet cache version: %w", err)
	}
	return nil
}

func (c *FacetCache) key(ctx context.Context, f model.ProductFilter) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("read facet cache version: %w", err)
	}
	return fmt.Sprintf("facets:v%d:%s", version, FilterHash(f)), nil
}

// FilterHash is a stable digest of f. Attribute value order does not matter.
func FilterHash(f model.ProductFilter) string {
	canonical := struct {
		CategoryID *int64              `json:"c,omitempty"`
		InStock    *bool               `json:"s,omitempty"`
		Search     string              `json:"q,omitempty"`
		Attributes map[string][]string `json:"a,omitempty"`
	}{
		CategoryID: f.CategoryID,
		InStock:    f.InStock,
		Search:     f.Search,
	}

	for attr, values := range f.Attributes {
		if len(values) == 0 {
			continue
		}
		if canonical.Attributes == nil {
			canonical.Attributes = make(map[string][]string)
		}
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		canonical.Attributes[attr] = sorted
	}

	// encoding/json writes map keys sorted, so the output is deterministic.
	raw, _ := json.Marshal(canonical)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:12])
}

package status

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PetBot_Go/internal/logger"
)

// CachingRenderer memoizes another Renderer by snapshot fingerprint and
// owner display name. Entries expire after the configured TTL.
type CachingRenderer struct {
	next Renderer
	lru  *expirable.LRU[string, Rendered]
}

// NewCachingRenderer wraps next with an LRU of the given size and TTL.
// Non-positive values use the package defaults.
func NewCachingRenderer(next Renderer, size int, ttl time.Duration) *CachingRenderer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachingRenderer{
		next: next,
		lru:  expirable.NewLRU[string, Rendered](size, nil, ttl),
	}
}

func (c *CachingRenderer) RenderStatus(ctx context.Context, snap Snapshot, ownerDisplayName string) (Rendered, error) {
	key := snap.Fingerprint() + ":" + ownerDisplayName
	if out, ok := c.lru.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgRenderCacheHit, "pet", snap.Key.String())
		return out, nil
	}

	out, err := c.next.RenderStatus(ctx, snap, ownerDisplayName)
	if err != nil {
		return Rendered{}, err
	}
	c.lru.Add(key, out)
	logger.FromContext(ctx).Debug(LogMsgRenderCacheMiss, "pet", snap.Key.String())
	return out, nil
}

// Len reports the number of cached cards
func (c *CachingRenderer) Len() int {
	return c.lru.Len()
}

// Purge drops every cached card
func (c *CachingRenderer) Purge() {
	c.lru.Purge()
}

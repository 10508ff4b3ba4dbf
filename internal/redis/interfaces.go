package redis

import (
	"context"
	"time"
)

// ResponseStoreInterface defines the interface for idempotent response replay.
type ResponseStoreInterface interface {
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, resp *CachedResponse, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var _ ResponseStoreInterface = (*ResponseStore)(nil)

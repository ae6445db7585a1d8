package contract

import (
	"context"
	"time"
)

// ResultCache stores JSON-encodable query results for a bounded time.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

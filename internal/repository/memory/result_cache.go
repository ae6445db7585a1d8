package memory

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"medinfo-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type ResultCache struct {
	cache *cache.Cache
}

var _ contract.ResultCache = (*ResultCache)(nil)

func NewResultCache() *ResultCache {
	// Default expiration of 10 minutes, purge expired items every minute
	c := cache.New(10*time.Minute, time.Minute)
	return &ResultCache{
		cache: c,
	}
}

func (r *ResultCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	x, found := r.cache.Get(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(x.([]byte), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ResultCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.cache.Set(key, data, ttl)
	return nil
}

func (r *ResultCache) DeletePrefix(ctx context.Context, prefix string) error {
	for key := range r.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			r.cache.Delete(key)
		}
	}
	return nil
}

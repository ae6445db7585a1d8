package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string  `json:"name"`
	Km   float64 `json:"km"`
}

func TestResultCache(t *testing.T) {
	c := NewResultCache()
	ctx := context.Background()

	var out entry
	ok, err := c.Get(ctx, "kendra:nearby:a", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "kendra:nearby:a", entry{Name: "K1", Km: 1.5}, time.Minute))
	require.NoError(t, c.Set(ctx, "kendra:nearby:b", entry{Name: "K2"}, time.Minute))
	require.NoError(t, c.Set(ctx, "essentials:categories", []string{"pain"}, time.Minute))

	ok, err = c.Get(ctx, "kendra:nearby:a", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry{Name: "K1", Km: 1.5}, out)

	require.NoError(t, c.DeletePrefix(ctx, "kendra:nearby:"))

	ok, _ = c.Get(ctx, "kendra:nearby:b", &out)
	assert.False(t, ok)

	var categories []string
	ok, err = c.Get(ctx, "essentials:categories", &categories)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"pain"}, categories)
}

func TestResultCache_Expiry(t *testing.T) {
	c := NewResultCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", 1, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var v int
	ok, err := c.Get(ctx, "short", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

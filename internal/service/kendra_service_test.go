package service

import (
	"context"
	"math"
	"testing"

	"medinfo-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKendraService_Nearby(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewKendraService(deps.uowFactory, deps.cache, deps.log)
	ctx := context.Background()

	// Standing on Kendra 2
	res, err := svc.Nearby(ctx, &dto.NearbyKendrasRequest{Lat: 28.7041, Lng: 77.1025})
	require.NoError(t, err)
	require.Len(t, res.Kendras, 2)
	assert.Equal(t, "Kendra 2", res.Kendras[0].Name)
	assert.Equal(t, 0.0, res.Kendras[0].DistanceKm)
	assert.Equal(t, "Kendra 1", res.Kendras[1].Name)
	assert.InDelta(t, 14.4, res.Kendras[1].DistanceKm, 0.5)

	within, err := svc.Nearby(ctx, &dto.NearbyKendrasRequest{Lat: 28.7041, Lng: 77.1025, RadiusKm: 5})
	require.NoError(t, err)
	require.Len(t, within.Kendras, 1)
	assert.Equal(t, "Kendra 2", within.Kendras[0].Name)
}

func TestKendraService_CreateInvalidatesCache(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewKendraService(deps.uowFactory, deps.cache, deps.log)
	ctx := context.Background()
	req := &dto.NearbyKendrasRequest{Lat: 28.6139, Lng: 77.2090}

	first, err := svc.Nearby(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.Kendras, 2)

	var cached []dto.KendraResponse
	ok, err := deps.cache.Get(ctx, kendraListCacheKey, &cached)
	require.NoError(t, err)
	require.True(t, ok)

	created, err := svc.Create(ctx, &dto.CreateKendraRequest{Name: " Kendra 3 ", Lat: 28.6140, Lng: 77.2091})
	require.NoError(t, err)
	assert.Equal(t, "Kendra 3", created.Name)

	ok, err = deps.cache.Get(ctx, kendraListCacheKey, &cached)
	require.NoError(t, err)
	assert.False(t, ok)

	second, err := svc.Nearby(ctx, req)
	require.NoError(t, err)
	require.Len(t, second.Kendras, 3)
	assert.Equal(t, "Kendra 1", second.Kendras[0].Name)
	assert.Equal(t, "Kendra 3", second.Kendras[1].Name)
}

func TestKendraService_CachedListKeepsCallerDistances(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewKendraService(deps.uowFactory, deps.cache, deps.log)
	ctx := context.Background()

	// Standing on Kendra 2 warms the cache
	first, err := svc.Nearby(ctx, &dto.NearbyKendrasRequest{Lat: 28.7041, Lng: 77.1025})
	require.NoError(t, err)
	require.Len(t, first.Kendras, 2)
	assert.Equal(t, 0.0, first.Kendras[0].DistanceKm)

	var cached []dto.KendraResponse
	ok, err := deps.cache.Get(ctx, kendraListCacheKey, &cached)
	require.NoError(t, err)
	require.True(t, ok)
	for _, k := range cached {
		assert.Zero(t, k.DistanceKm)
	}

	// About 60m away from the first caller
	lat, lng := 28.7046, 77.1027
	second, err := svc.Nearby(ctx, &dto.NearbyKendrasRequest{Lat: lat, Lng: lng})
	require.NoError(t, err)
	require.Len(t, second.Kendras, 2)
	assert.Equal(t, "Kendra 2", second.Kendras[0].Name)
	for _, k := range second.Kendras {
		assert.InDelta(t, math.Round(haversineKm(lat, lng, k.Lat, k.Lng)*100)/100, k.DistanceKm, 1e-9, k.Name)
	}
	assert.Greater(t, second.Kendras[0].DistanceKm, 0.0)
}

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 0, haversineKm(10, 10, 10, 10), 1e-9)
	// One degree of latitude is about 111km
	assert.InDelta(t, 111.19, haversineKm(0, 0, 1, 0), 0.1)
}

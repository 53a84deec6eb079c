package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheService_Stats(t *testing.T) {
	store := predcache.New(50, time.Hour)
	service := NewCacheService(store)

	store.Insert(predcache.Key("a"), "spam")
	store.Lookup(predcache.Key("a"))
	store.Lookup(predcache.Key("b"))

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 50, stats.MaxSize)
	assert.Equal(t, 3600, stats.TTLSeconds)
	assert.Equal(t, "1h0m0s", stats.TTLHuman)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 50.0, stats.HitRatePercent)
}

func TestCacheService_Clear(t *testing.T) {
	store := predcache.New(50, time.Hour)
	service := NewCacheService(store)

	store.Insert(predcache.Key("a"), "spam")
	require.NoError(t, service.Clear(context.Background()))

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Size)
}

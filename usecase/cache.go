package usecase

import (
	"context"
	"time"

	domainCache "github.com/calderonh/spamsense/domains/cache"
	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/sirupsen/logrus"
)

type cacheService struct {
	store *predcache.Store
}

func NewCacheService(store *predcache.Store) domainCache.ICacheUsecase {
	return &cacheService{store: store}
}

func (s *cacheService) GetStats(ctx context.Context) (domainCache.CacheStats, error) {
	snap := s.store.Stats()
	return domainCache.CacheStats{
		Size:           snap.Size,
		MaxSize:        snap.MaxSize,
		TTLSeconds:     snap.TTLSeconds,
		TTLHuman:       (time.Duration(snap.TTLSeconds) * time.Second).String(),
		Hits:           snap.Hits,
		Misses:         snap.Misses,
		TotalRequests:  snap.TotalRequests,
		HitRatePercent: snap.HitRatePercent,
	}, nil
}

func (s *cacheService) Clear(ctx context.Context) error {
	s.store.Clear()
	logrus.Info("[CACHE] Prediction cache cleared")
	return nil
}

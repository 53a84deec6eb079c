package cache

import "context"

type CacheStats struct {
	Size           int     `json:"size"`
	MaxSize        int     `json:"max_size"`
	TTLSeconds     int     `json:"ttl_seconds"`
	TTLHuman       string  `json:"ttl_human"`
	Hits           uint64  `json:"hits"`
	Misses         uint64  `json:"misses"`
	TotalRequests  uint64  `json:"total_requests"`
	HitRatePercent float64 `json:"hit_rate_percent"`
}

type ICacheUsecase interface {
	GetStats(ctx context.Context) (CacheStats, error)
	Clear(ctx context.Context) error
}

package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

type HealthRecord struct {
	ID               string    `json:"id"`
	Status           Status    `json:"status"`
	Classifier       string    `json:"classifier"`
	ArtifactsPresent bool      `json:"artifacts_present"`
	CacheSize        int       `json:"cache_size"`
	Uptime           string    `json:"uptime"`
	CheckedAt        time.Time `json:"checked_at"`
}

type IHealthUsecase interface {
	GetStatus(ctx context.Context) (HealthRecord, error)
}

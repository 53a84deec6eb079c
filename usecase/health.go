package usecase

import (
	"context"
	"os"
	"time"

	domainHealth "github.com/calderonh/spamsense/domains/health"
	domainPredict "github.com/calderonh/spamsense/domains/predict"
	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/google/uuid"
)

type healthService struct {
	classifier    domainPredict.Classifier
	cache         *predcache.Store
	artifactPaths []string
	startedAt     time.Time
}

func NewHealthService(classifier domainPredict.Classifier, cache *predcache.Store, artifactPaths ...string) domainHealth.IHealthUsecase {
	return &healthService{
		classifier:    classifier,
		cache:         cache,
		artifactPaths: artifactPaths,
		startedAt:     time.Now(),
	}
}

func (s *healthService) GetStatus(ctx context.Context) (domainHealth.HealthRecord, error) {
	present := true
	for _, path := range s.artifactPaths {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			present = false
			break
		}
	}

	status := domainHealth.StatusOk
	if !present {
		status = domainHealth.StatusError
	}

	return domainHealth.HealthRecord{
		ID:               uuid.NewString(),
		Status:           status,
		Classifier:       s.classifier.Name(),
		ArtifactsPresent: present,
		CacheSize:        s.cache.Stats().Size,
		Uptime:           time.Since(s.startedAt).Round(time.Second).String(),
		CheckedAt:        time.Now(),
	}, nil
}

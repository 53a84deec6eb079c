package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainHealth "github.com/calderonh/spamsense/domains/health"
	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Ok(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	prepPath := filepath.Join(dir, "preprocessor.json")
	require.NoError(t, os.WriteFile(modelPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(prepPath, []byte("{}"), 0644))

	service := NewHealthService(&fakeClassifier{}, predcache.New(10, time.Hour), modelPath, prepPath)

	record, err := service.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domainHealth.StatusOk, record.Status)
	assert.True(t, record.ArtifactsPresent)
	assert.Equal(t, "decision tree", record.Classifier)
	assert.NotEmpty(t, record.ID)
}

func TestHealthService_MissingArtifacts(t *testing.T) {
	service := NewHealthService(&fakeClassifier{}, predcache.New(10, time.Hour),
		filepath.Join(t.TempDir(), "model.json"))

	record, err := service.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domainHealth.StatusError, record.Status)
	assert.False(t, record.ArtifactsPresent)
}

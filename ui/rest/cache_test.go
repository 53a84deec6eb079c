package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainCache "github.com/calderonh/spamsense/domains/cache"
	"github.com/gofiber/fiber/v2"
)

type stubCacheUsecase struct {
	stats   domainCache.CacheStats
	cleared bool
}

func (s *stubCacheUsecase) GetStats(_ context.Context) (domainCache.CacheStats, error) {
	return s.stats, nil
}

func (s *stubCacheUsecase) Clear(_ context.Context) error {
	s.cleared = true
	return nil
}

func TestCacheStats(t *testing.T) {
	app := fiber.New()
	stub := &stubCacheUsecase{stats: domainCache.CacheStats{
		Size: 3, MaxSize: 100, TTLSeconds: 3600,
		Hits: 7, Misses: 3, TotalRequests: 10, HitRatePercent: 70,
	}}
	InitRestCache(app, stub)

	req := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Results domainCache.CacheStats `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if envelope.Results.Hits != 7 || envelope.Results.HitRatePercent != 70 {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestCacheClear(t *testing.T) {
	app := fiber.New()
	stub := &stubCacheUsecase{}
	InitRestCache(app, stub)

	req := httptest.NewRequest(http.MethodPost, "/cache/clear", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !stub.cleared {
		t.Fatal("clear was not forwarded to the usecase")
	}
}

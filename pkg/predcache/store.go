// Package predcache provides the in-memory prediction cache: a bounded,
// TTL-aware store keyed by a content hash of the input message. Eviction is
// strictly FIFO by insertion order; a lookup hit does not refresh an entry's
// position. This keeps eviction O(1) with no extra bookkeeping and is an
// intentional property, not an oversight.
package predcache

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"sync"
	"time"
)

// Key derives the cache fingerprint for a raw message. Same message always
// yields the same key; distinct messages collide only with sha256 probability.
func Key(message string) string {
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:])
}

type entry struct {
	value     string
	createdAt time.Time
}

// Store is a single shared cache instance. All request handlers go through the
// same mutex; critical sections are tiny so one lock is enough.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	order   []string // insertion order, front is evicted first
	maxSize int
	ttl     time.Duration
	hits    uint64
	misses  uint64

	now func() time.Time // overridable in tests
}

// Stats is a read-only snapshot of the store.
type Stats struct {
	Size           int     `json:"size"`
	MaxSize        int     `json:"max_size"`
	TTLSeconds     int     `json:"ttl_seconds"`
	Hits           uint64  `json:"hits"`
	Misses         uint64  `json:"misses"`
	TotalRequests  uint64  `json:"total_requests"`
	HitRatePercent float64 `json:"hit_rate_percent"`
}

func New(maxSize int, ttl time.Duration) *Store {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Store{
		entries: make(map[string]entry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Lookup returns the cached value for key. Entries older than the TTL are
// removed here, on the read path; there is no background sweeper.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return "", false
	}

	if s.now().Sub(e.createdAt) >= s.ttl {
		s.remove(key)
		s.misses++
		return "", false
	}

	s.hits++
	return e.value, true
}

// Insert stores value under key, evicting the oldest entry when at capacity.
// Re-inserting an existing key resets its position to newest.
func (s *Store) Insert(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		s.removeFromOrder(key)
	} else if len(s.entries) >= s.maxSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}

	s.entries[key] = entry{value: value, createdAt: s.now()}
	s.order = append(s.order, key)
}

// Stats reports the current snapshot. Hit rate is rounded to two decimals and
// zero when no lookups have happened yet.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.hits + s.misses
	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(s.hits)/float64(total)*100*100) / 100
	}

	return Stats{
		Size:           len(s.entries),
		MaxSize:        s.maxSize,
		TTLSeconds:     int(s.ttl / time.Second),
		Hits:           s.hits,
		Misses:         s.misses,
		TotalRequests:  total,
		HitRatePercent: rate,
	}
}

// Clear drops all entries. Hit/miss counters keep their process-lifetime scope.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
	s.order = s.order[:0]
}

// remove deletes key from both the map and the order queue. Caller holds mu.
func (s *Store) remove(key string) {
	delete(s.entries, key)
	s.removeFromOrder(key)
}

func (s *Store) removeFromOrder(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

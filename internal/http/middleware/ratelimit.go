package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

// WindowEntry is one client's state within the current fixed window.
type WindowEntry struct {
	Count     int
	ExpiresAt time.Time
}

// Store persists rate-limit windows keyed by client identifier. The memory
// implementation is the default; a Redis-backed one exists so the limiter can
// be shared across replicas without changing the limiter itself.
type Store interface {
	Get(ctx context.Context, key string) (WindowEntry, bool, error)
	Set(ctx context.Context, key string, entry WindowEntry) error
	// Sweep removes entries whose window has already expired. Purely a
	// memory-bound measure; it must never remove a live entry.
	Sweep(ctx context.Context, now time.Time) error
}

// Limiter is a fixed-window request limiter. This is advisory throttling,
// not a security boundary: the client key is a best-effort header-derived
// string and must never gate authorization.
type Limiter struct {
	mu     sync.Mutex
	store  Store
	window time.Duration
	max    int
	logger *logging.Logger
	now    func() time.Time
}

// NewLimiter creates a limiter allowing max requests per window.
func NewLimiter(store Store, window time.Duration, max int, logger *logging.Logger) *Limiter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Limiter{
		store:  store,
		window: window,
		max:    max,
		logger: logger,
		now:    time.Now,
	}
}

// CheckAndRecord records a request for key and reports whether it is allowed.
// The increment happens even for the request that exceeds the threshold, so a
// limited client keeps extending its count and cannot reset its own window by
// spamming. A request arriving after expiry opens a fresh window with count 1.
// Store errors fail open.
func (l *Limiter) CheckAndRecord(ctx context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.Warn("rate limit store get failed, allowing request", "error", err, "key", key)
		return true
	}

	if !ok || now.After(entry.ExpiresAt) {
		entry = WindowEntry{Count: 1, ExpiresAt: now.Add(l.window)}
		if err := l.store.Set(ctx, key, entry); err != nil {
			l.logger.Warn("rate limit store set failed", "error", err, "key", key)
		}
		return true
	}

	entry.Count++
	if err := l.store.Set(ctx, key, entry); err != nil {
		l.logger.Warn("rate limit store set failed", "error", err, "key", key)
	}
	return entry.Count <= l.max
}

// StartSweeper runs the background sweep until ctx is cancelled.
func (l *Limiter) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.store.Sweep(ctx, l.now()); err != nil {
					l.logger.Warn("rate limit sweep failed", "error", err)
				}
			}
		}
	}()
}

// MemoryStore is the single-process default store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]WindowEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]WindowEntry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (WindowEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry WindowEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

func (s *MemoryStore) Sweep(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.entries {
		if now.After(entry.ExpiresAt) {
			delete(s.entries, key)
		}
	}
	return nil
}

// Len reports the number of tracked keys. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ClientKey derives the best-effort client identifier from proxy headers.
// Trivially spoofable; acceptable for advisory throttling only.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return xri
	}
	return "unknown"
}

// RateLimit rejects over-limit requests with 429 and a human-readable message.
func RateLimit(limiter *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.CheckAndRecord(r.Context(), ClientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"message": "You're sending messages too quickly. Please wait a moment and try again.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package holiday

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Lister is the read side of the holiday store.
type Lister interface {
	List(ctx context.Context) ([]Holiday, error)
}

// Service serves the holiday list the calculators read. A fetch failure
// falls back to the last successfully fetched list, mirroring the mobile
// client's offline cache: the data may be stale but a calculation can
// still proceed.
type Service struct {
	store  Lister
	logger *slog.Logger

	mu       sync.RWMutex
	cached   []Holiday
	hasCache bool
	cachedAt time.Time
}

func NewService(store Lister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// List returns the current holiday list. The second return value reports
// whether the list came from the fallback cache rather than the store.
func (s *Service) List(ctx context.Context) ([]Holiday, bool, error) {
	holidays, err := s.store.List(ctx)
	if err == nil {
		s.mu.Lock()
		s.cached = holidays
		s.hasCache = true
		s.cachedAt = time.Now()
		s.mu.Unlock()
		return holidays, false, nil
	}

	s.mu.RLock()
	cached, hasCache, cachedAt := s.cached, s.hasCache, s.cachedAt
	s.mu.RUnlock()

	if !hasCache {
		return nil, false, ErrUnavailable
	}

	s.logger.Warn("holiday list fetch failed, serving cached copy",
		"err", err, "cachedAt", cachedAt.Format(time.RFC3339))
	out := make([]Holiday, len(cached))
	copy(out, cached)
	return out, true, nil
}

// Invalidate drops the cached list after an admin mutation so the next
// read reflects it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.hasCache = false
	s.cachedAt = time.Time{}
	s.mu.Unlock()
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

// PageCacheKeyPrefix namespaces rendered pages in the cache.
const PageCacheKeyPrefix = "pages:"

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CachedPage is a rendered HTML page as stored in the cache.
type CachedPage struct {
	Body       string    `json:"body"`
	RenderedAt time.Time `json:"rendered_at"`
}

// CacheService wraps the page cache with metrics and fail-open semantics:
// cache errors are logged and treated as misses.
type CacheService struct {
	repo       CacheRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// GetPage returns the cached page for name. The bool is false on a miss or
// when the cache is unavailable.
func (s *CacheService) GetPage(ctx context.Context, name string) (*CachedPage, bool) {
	if !s.Enabled() {
		return nil, false
	}
	key := PageCacheKeyPrefix + name
	start := time.Now()
	var page CachedPage
	err := s.repo.Get(ctx, key, &page)
	duration := time.Since(start)
	if err != nil {
		s.metrics.RecordCacheOperation(false, duration)
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	s.metrics.RecordCacheOperation(true, duration)
	return &page, true
}

// SetPage stores a rendered page using the default TTL.
func (s *CacheService) SetPage(ctx context.Context, name string, body []byte) {
	if !s.Enabled() {
		return
	}
	key := PageCacheKeyPrefix + name
	start := time.Now()
	err := s.repo.Set(ctx, key, CachedPage{Body: string(body), RenderedAt: time.Now().UTC()}, s.defaultTTL)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidatePages drops every cached page, e.g. after a catalog reload.
func (s *CacheService) InvalidatePages(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	pattern := PageCacheKeyPrefix + "*"
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		return err
	}
	return nil
}

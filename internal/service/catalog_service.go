package service

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/noah-isme/techclub-site/internal/models"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

// CatalogSource loads a full catalog from wherever the records live.
type CatalogSource interface {
	Name() string
	Load(ctx context.Context) (*models.Catalog, error)
}

// PageInvalidator drops rendered pages after the catalog changes.
type PageInvalidator interface {
	InvalidatePages(ctx context.Context) error
}

// CatalogService owns the active catalog snapshot. Snapshots are replaced
// wholesale and never mutated, so readers need no locking.
type CatalogService struct {
	source    CatalogSource
	validator *CatalogValidator
	strict    bool
	metrics   *MetricsService
	logger    *zap.Logger

	current    atomic.Pointer[models.Catalog]
	generation atomic.Uint64
	loadMu     sync.Mutex
}

// NewCatalogService constructs the service. In strict mode any validation
// issue rejects the load; otherwise issues are logged and the records are
// served as they are.
func NewCatalogService(source CatalogSource, validator *CatalogValidator, strict bool, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if validator == nil {
		validator = NewCatalogValidator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{source: source, validator: validator, strict: strict, metrics: metrics, logger: logger}
}

// Load reads the catalog from the source and swaps it in. On failure the
// previous snapshot, if any, stays active.
func (s *CatalogService) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	catalog, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.RecordCatalogLoad(s.source.Name(), err, 0, 0, 0, 0)
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load catalog")
	}

	issues := s.validator.Check(catalog)
	if len(issues) > 0 {
		if s.strict {
			err := appErrors.Clone(appErrors.ErrCatalogInvalid, "catalog failed validation: "+Summarize(issues))
			s.metrics.RecordCatalogLoad(s.source.Name(), err, 0, 0, 0, len(issues))
			return err
		}
		for _, issue := range issues {
			s.logger.Warn("catalog record issue",
				zap.String("collection", issue.Collection),
				zap.Int("index", issue.Index),
				zap.Int("id", issue.ID),
				zap.String("field", issue.Field),
				zap.String("rule", issue.Rule),
			)
		}
	}

	s.current.Store(catalog)
	s.generation.Add(1)
	s.metrics.RecordCatalogLoad(s.source.Name(), nil, len(catalog.UpcomingEvents), len(catalog.PastEvents), len(catalog.Projects), len(issues))
	s.logger.Info("catalog loaded",
		zap.String("source", s.source.Name()),
		zap.Int("upcoming_events", len(catalog.UpcomingEvents)),
		zap.Int("past_events", len(catalog.PastEvents)),
		zap.Int("projects", len(catalog.Projects)),
		zap.Int("issues", len(issues)),
		zap.Uint64("generation", s.generation.Load()),
	)
	return nil
}

// Snapshot returns the active catalog. Callers must treat it as read-only.
func (s *CatalogService) Snapshot(ctx context.Context) (*models.Catalog, error) {
	catalog := s.current.Load()
	if catalog == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "catalog not loaded")
	}
	return catalog, nil
}

// Ready reports whether a snapshot is available.
func (s *CatalogService) Ready() bool {
	return s.current.Load() != nil
}

// Generation counts successful loads. It changes whenever a new snapshot is
// swapped in and is zero before the first load.
func (s *CatalogService) Generation() uint64 {
	return s.generation.Load()
}

// ReloadOn reloads the catalog every time trigger fires and clears rendered
// pages once the new snapshot is active. A failed reload keeps the current
// snapshot and leaves the cache alone. It returns when ctx is done or trigger
// is closed.
func (s *CatalogService) ReloadOn(ctx context.Context, trigger <-chan os.Signal, pages PageInvalidator) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-trigger:
			if !ok {
				return
			}
			s.logger.Info("catalog reload requested", zap.Stringer("signal", sig))
			if err := s.Load(ctx); err != nil {
				s.logger.Error("catalog reload failed, keeping previous snapshot", zap.Error(err))
				continue
			}
			if pages == nil {
				continue
			}
			if err := pages.InvalidatePages(ctx); err != nil {
				s.logger.Warn("page cache not cleared after reload", zap.Error(err))
			}
		}
	}
}

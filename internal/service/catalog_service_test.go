package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/techclub-site/internal/models"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

type catalogSourceStub struct {
	catalog *models.Catalog
	err     error
	calls   int
}

func (s *catalogSourceStub) Name() string { return "stub" }

func (s *catalogSourceStub) Load(ctx context.Context) (*models.Catalog, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

func validEvent(id int, status models.EventStatus) models.Event {
	return models.Event{
		ID:          id,
		Name:        "Event",
		Description: "Something fun",
		Image:       "/img/e.jpg",
		Date:        "2024-05-01",
		Time:        "10:00 AM",
		Venue:       "Lab 3",
		Status:      status,
		Type:        models.EventTypeWorkshop,
	}
}

func validProject(id int) models.Project {
	return models.Project{
		ID:          id,
		Name:        "Project",
		Description: "Builds things",
		Image:       "/img/p.jpg",
		StartDate:   "2024-01-01",
		Status:      models.ProjectStatusActive,
		Category:    models.ProjectCategorySoftware,
		TechStack:   []string{"Go"},
		GitHubURL:   strPtr("https://github.com/club/project"),
	}
}

func sampleCatalog() *models.Catalog {
	return &models.Catalog{
		UpcomingEvents: []models.Event{validEvent(1, models.EventStatusOpen), validEvent(2, models.EventStatusLive)},
		PastEvents:     []models.Event{validEvent(3, models.EventStatusEnded)},
		Projects:       []models.Project{validProject(1), validProject(2)},
	}
}

func TestCatalogValidatorAcceptsValidCatalog(t *testing.T) {
	v := NewCatalogValidator(nil)
	assert.Empty(t, v.Check(sampleCatalog()))
}

func TestCatalogValidatorReportsIssues(t *testing.T) {
	catalog := sampleCatalog()
	catalog.UpcomingEvents[0].Status = "Cancelled"
	catalog.UpcomingEvents[1].Name = ""
	catalog.PastEvents[0].ID = 1
	catalog.Projects[0].Category = "Quantum"
	catalog.Projects[1].DocsURL = strPtr("not a url")
	catalog.Projects[1].TechStack = []string{"Go", ""}

	issues := NewCatalogValidator(nil).Check(catalog)

	rules := make([]string, 0, len(issues))
	for _, issue := range issues {
		rules = append(rules, issue.Collection+"."+issue.Field+":"+issue.Rule)
	}
	assert.ElementsMatch(t, []string{
		"upcomingEvents.Status:event_status",
		"upcomingEvents.Name:required",
		"pastEvents.ID:unique",
		"projects.Category:project_category",
		"projects.DocsURL:url",
		"projects.TechStack[1]:required",
	}, rules)
}

func TestCatalogServiceLenientLoadServesInvalidRecords(t *testing.T) {
	catalog := sampleCatalog()
	catalog.UpcomingEvents[0].Type = "Meetup"
	core, logs := observer.New(zap.WarnLevel)
	metrics := NewMetricsService()

	svc := NewCatalogService(&catalogSourceStub{catalog: catalog}, nil, false, metrics, zap.New(core))
	require.NoError(t, svc.Load(context.Background()))

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.UpcomingEvents, 2)
	assert.Equal(t, 1, logs.FilterMessage("catalog record issue").Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.catalogIssues))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.catalogRecords.WithLabelValues("projects")))
}

func TestCatalogServiceStrictLoadRejectsInvalidRecords(t *testing.T) {
	catalog := sampleCatalog()
	catalog.Projects[0].Status = "Paused"

	svc := NewCatalogService(&catalogSourceStub{catalog: catalog}, nil, true, nil, nil)
	err := svc.Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrCatalogInvalid))
	assert.True(t, strings.Contains(err.Error(), "projects[0] (id=1): Status failed \"project_status\""))
	assert.False(t, svc.Ready())
}

func TestCatalogServiceKeepsPreviousSnapshotOnFailure(t *testing.T) {
	source := &catalogSourceStub{catalog: sampleCatalog()}
	svc := NewCatalogService(source, nil, false, nil, nil)
	require.NoError(t, svc.Load(context.Background()))
	before, _ := svc.Snapshot(context.Background())

	source.err = errors.New("disk gone")
	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)

	after, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, 2, source.calls)
	assert.Equal(t, uint64(1), svc.Generation())
}

func TestCatalogServiceGenerationAdvancesOnLoad(t *testing.T) {
	svc := NewCatalogService(&catalogSourceStub{catalog: sampleCatalog()}, nil, true, nil, nil)
	assert.Zero(t, svc.Generation())

	require.NoError(t, svc.Load(context.Background()))
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, uint64(2), svc.Generation())
}

type pageInvalidatorStub struct {
	calls int
	err   error
}

func (p *pageInvalidatorStub) InvalidatePages(context.Context) error {
	p.calls++
	return p.err
}

// sendHangups delivers n signals to ReloadOn and waits for the loop to exit.
func sendHangups(t *testing.T, svc *CatalogService, pages PageInvalidator, n int) {
	t.Helper()
	trigger := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		svc.ReloadOn(context.Background(), trigger, pages)
		close(done)
	}()
	for i := 0; i < n; i++ {
		trigger <- syscall.SIGHUP
	}
	close(trigger)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reload loop did not stop")
	}
}

func TestCatalogServiceReloadOnSwapsSnapshotThenClearsPages(t *testing.T) {
	source := &catalogSourceStub{catalog: sampleCatalog()}
	svc := NewCatalogService(source, nil, true, nil, nil)
	require.NoError(t, svc.Load(context.Background()))

	next := sampleCatalog()
	next.Projects = next.Projects[:1]
	source.catalog = next
	pages := &pageInvalidatorStub{}

	sendHangups(t, svc, pages, 1)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, next, snap)
	assert.Equal(t, uint64(2), svc.Generation())
	assert.Equal(t, 1, pages.calls)
}

func TestCatalogServiceReloadOnFailureKeepsSnapshotAndCache(t *testing.T) {
	source := &catalogSourceStub{catalog: sampleCatalog()}
	core, logs := observer.New(zap.InfoLevel)
	svc := NewCatalogService(source, nil, true, nil, zap.New(core))
	require.NoError(t, svc.Load(context.Background()))
	before, _ := svc.Snapshot(context.Background())

	source.err = errors.New("disk gone")
	pages := &pageInvalidatorStub{}

	sendHangups(t, svc, pages, 2)

	after, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, uint64(1), svc.Generation())
	assert.Zero(t, pages.calls)
	assert.Equal(t, 3, source.calls)
	assert.Equal(t, 2, logs.FilterMessage("catalog reload failed, keeping previous snapshot").Len())
}

func TestCatalogServiceReloadOnToleratesCacheErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewCatalogService(&catalogSourceStub{catalog: sampleCatalog()}, nil, true, nil, zap.New(core))
	pages := &pageInvalidatorStub{err: errors.New("redis down")}

	sendHangups(t, svc, pages, 1)

	assert.True(t, svc.Ready())
	assert.Equal(t, 1, pages.calls)
	assert.Equal(t, 1, logs.FilterMessage("page cache not cleared after reload").Len())
}

func TestCatalogServiceReloadOnStopsWithContext(t *testing.T) {
	svc := NewCatalogService(&catalogSourceStub{catalog: sampleCatalog()}, nil, true, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		svc.ReloadOn(ctx, make(chan os.Signal), nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reload loop ignored cancellation")
	}
	assert.False(t, svc.Ready())
}

func TestCatalogServiceSnapshotBeforeLoad(t *testing.T) {
	svc := NewCatalogService(&catalogSourceStub{}, nil, false, nil, nil)
	_, err := svc.Snapshot(context.Background())
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

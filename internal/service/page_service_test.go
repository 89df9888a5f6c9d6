package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/techclub-site/internal/dto"
	"github.com/noah-isme/techclub-site/internal/models"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

type catalogReaderStub struct {
	catalog *models.Catalog
	err     error
}

func (s catalogReaderStub) Snapshot(ctx context.Context) (*models.Catalog, error) {
	return s.catalog, s.err
}

func TestEventsPagePreservesOrderAndGroups(t *testing.T) {
	catalog := &models.Catalog{
		UpcomingEvents: []models.Event{validEvent(7, models.EventStatusOpen), validEvent(3, models.EventStatusUpcoming), validEvent(9, models.EventStatusLive)},
		PastEvents:     []models.Event{validEvent(1, models.EventStatusEnded), validEvent(2, models.EventStatusEnded)},
	}
	svc := NewPageService(catalogReaderStub{catalog: catalog}, nil)

	page, err := svc.EventsPage(context.Background())
	require.NoError(t, err)

	require.Len(t, page.Upcoming.Cards, 3)
	require.Len(t, page.Past.Cards, 2)
	assert.Equal(t, []int{7, 3, 9}, []int{page.Upcoming.Cards[0].ID, page.Upcoming.Cards[1].ID, page.Upcoming.Cards[2].ID})
	assert.Equal(t, []int{1, 2}, []int{page.Past.Cards[0].ID, page.Past.Cards[1].ID})
	assert.Equal(t, 2, page.Upcoming.Columns)
	assert.Equal(t, 3, page.Past.Columns)
	assert.Equal(t, dto.CardVariantFull, page.Upcoming.Cards[0].Variant)
	assert.Equal(t, dto.CardVariantCondensed, page.Past.Cards[1].Variant)
	assert.Equal(t, []int{0, 100, 200}, []int{page.Upcoming.Cards[0].AnimationDelayMs, page.Upcoming.Cards[1].AnimationDelayMs, page.Upcoming.Cards[2].AnimationDelayMs})
}

func TestEventsPageEmptyGroups(t *testing.T) {
	svc := NewPageService(catalogReaderStub{catalog: &models.Catalog{}}, nil)

	page, err := svc.EventsPage(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, page.Upcoming.Cards)
	assert.Empty(t, page.Past.Cards)
}

func TestProjectsPageCardsAndCallToAction(t *testing.T) {
	catalog := &models.Catalog{Projects: []models.Project{validProject(4), validProject(2)}}
	svc := NewPageService(catalogReaderStub{catalog: catalog}, NewCardRenderer(0))

	page, err := svc.ProjectsPage(context.Background())
	require.NoError(t, err)

	require.Len(t, page.Cards, 2)
	assert.Equal(t, 4, page.Cards[0].ID)
	assert.Equal(t, 2, page.Cards[1].ID)
	assert.Equal(t, 3, page.Columns)
	require.Len(t, page.CallToAction.Features, 3)
	assert.Equal(t, "Innovation", page.CallToAction.Features[0].Title)
	assert.Equal(t, "Submit Your Idea", page.CallToAction.Action.Label)
	assert.True(t, page.CallToAction.Action.Inert)
}

func TestEventCardLookup(t *testing.T) {
	catalog := &models.Catalog{
		UpcomingEvents: []models.Event{validEvent(1, models.EventStatusOpen)},
		PastEvents:     []models.Event{validEvent(5, models.EventStatusEnded)},
	}
	svc := NewPageService(catalogReaderStub{catalog: catalog}, nil)

	card, err := svc.EventCard(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, dto.CardVariantCondensed, card.Variant)

	_, err = svc.EventCard(context.Background(), 42)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestProjectCardLookup(t *testing.T) {
	svc := NewPageService(catalogReaderStub{catalog: &models.Catalog{Projects: []models.Project{validProject(8)}}}, nil)

	card, err := svc.ProjectCard(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "Project", card.Title)

	_, err = svc.ProjectCard(context.Background(), 9)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPageServicePropagatesCatalogErrors(t *testing.T) {
	svc := NewPageService(catalogReaderStub{err: appErrors.ErrUnavailable}, nil)

	_, err := svc.EventsPage(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUnavailable)
	_, err = svc.ProjectsPage(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUnavailable)
}

package service

import (
	"context"

	"github.com/noah-isme/techclub-site/internal/dto"
	"github.com/noah-isme/techclub-site/internal/models"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

type catalogReader interface {
	Snapshot(ctx context.Context) (*models.Catalog, error)
}

const (
	upcomingColumns = 2
	pastColumns     = 3
	projectColumns  = 3
)

// PageService composes the events and projects pages from the active catalog.
type PageService struct {
	catalog  catalogReader
	renderer *CardRenderer
}

// NewPageService constructs the composer.
func NewPageService(catalog catalogReader, renderer *CardRenderer) *PageService {
	if renderer == nil {
		renderer = NewCardRenderer(DefaultStagger)
	}
	return &PageService{catalog: catalog, renderer: renderer}
}

// EventsPage renders the upcoming group as full cards and the past group as
// condensed cards, both in source order.
func (s *PageService) EventsPage(ctx context.Context) (*dto.EventsPage, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EventsPage{
		Hero: dto.Hero{
			Title: "Events",
			Intro: "Join us for exciting events, workshops, and competitions that shape the future of technology.",
		},
		Upcoming: dto.EventSection{
			Key:     models.EventGroupUpcoming,
			Heading: "Upcoming Events",
			Columns: upcomingColumns,
			Cards:   s.eventCards(catalog.UpcomingEvents, dto.CardVariantFull),
		},
		Past: dto.EventSection{
			Key:     models.EventGroupPast,
			Heading: "Past Events",
			Columns: pastColumns,
			Cards:   s.eventCards(catalog.PastEvents, dto.CardVariantCondensed),
		},
	}, nil
}

// ProjectsPage renders every project followed by the call-to-action block.
func (s *PageService) ProjectsPage(ctx context.Context) (*dto.ProjectsPage, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	cards := make([]dto.ProjectCard, 0, len(catalog.Projects))
	for i, p := range catalog.Projects {
		cards = append(cards, s.renderer.RenderProjectCard(p, i))
	}
	return &dto.ProjectsPage{
		Hero: dto.Hero{
			Title: "Our Projects",
			Intro: "Discover our innovative projects that push the boundaries of technology and create real-world impact.",
		},
		Columns:      projectColumns,
		Cards:        cards,
		CallToAction: projectCallToAction(),
	}, nil
}

// EventCard finds one event by id, looking in the upcoming group first.
func (s *PageService) EventCard(ctx context.Context, id int) (*dto.EventCard, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i, e := range catalog.UpcomingEvents {
		if e.ID == id {
			card := s.renderer.RenderEventCard(e, i, dto.CardVariantFull)
			return &card, nil
		}
	}
	for i, e := range catalog.PastEvents {
		if e.ID == id {
			card := s.renderer.RenderEventCard(e, i, dto.CardVariantCondensed)
			return &card, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
}

// ProjectCard finds one project by id.
func (s *PageService) ProjectCard(ctx context.Context, id int) (*dto.ProjectCard, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i, p := range catalog.Projects {
		if p.ID == id {
			card := s.renderer.RenderProjectCard(p, i)
			return &card, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "project not found")
}

func (s *PageService) eventCards(events []models.Event, variant dto.CardVariant) []dto.EventCard {
	cards := make([]dto.EventCard, 0, len(events))
	for i, e := range events {
		cards = append(cards, s.renderer.RenderEventCard(e, i, variant))
	}
	return cards
}

func projectCallToAction() dto.CallToAction {
	return dto.CallToAction{
		Title: "Have a Project Idea?",
		Body:  "We're always excited to explore new ideas and innovative solutions. Share your vision with us and let's build something amazing together.",
		Features: []dto.Feature{
			{Icon: "lightbulb", Title: "Innovation", Body: "Cutting-edge solutions for real-world problems", Tone: models.ToneCyan},
			{Icon: "users", Title: "Collaboration", Body: "Work with passionate and skilled team members", Tone: models.ToneBlue},
			{Icon: "rocket", Title: "Impact", Body: "Create solutions that make a difference", Tone: models.TonePurple},
		},
		Action: dto.Action{Label: "Submit Your Idea", Inert: true},
	}
}

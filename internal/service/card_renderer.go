package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/techclub-site/internal/dto"
	"github.com/noah-isme/techclub-site/internal/models"
)

// DefaultStagger is the entrance animation delay added per card position.
const DefaultStagger = 100 * time.Millisecond

const (
	labelRegister = "Register Now"
	labelCode     = "Code"
	labelDemo     = "Demo"
	labelDocs     = "Docs"
)

// CardRenderer turns records into card view models. It is stateless and safe
// for concurrent use.
type CardRenderer struct {
	stagger time.Duration
}

// NewCardRenderer constructs a renderer. A non-positive stagger falls back to
// DefaultStagger.
func NewCardRenderer(stagger time.Duration) *CardRenderer {
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	return &CardRenderer{stagger: stagger}
}

// DateLine formats a start date with an optional end date.
func DateLine(start string, end *string) string {
	if end == nil || *end == "" {
		return start
	}
	return fmt.Sprintf("%s - %s", start, *end)
}

func (r *CardRenderer) delay(index int) int {
	if index < 0 {
		index = 0
	}
	return int((time.Duration(index) * r.stagger).Milliseconds())
}

// RenderEventCard renders one event. index only affects animation timing.
func (r *CardRenderer) RenderEventCard(e models.Event, index int, variant dto.CardVariant) dto.EventCard {
	card := dto.EventCard{
		ID:               e.ID,
		Variant:          variant,
		Image:            e.Image,
		ImageAlt:         e.Name,
		StatusBadge:      solidBadge(string(e.Status), toneOf(e.Status.Treatment())),
		Title:            e.Name,
		Description:      e.Description,
		Details:          []dto.DetailRow{},
		Actions:          []dto.Action{},
		AnimationDelayMs: r.delay(index),
	}

	if variant == dto.CardVariantCondensed {
		card.TypeBadge = solidBadge(string(e.Type), models.ToneGray)
		card.DateLine = e.Date
		return card
	}

	card.Variant = dto.CardVariantFull
	card.TypeBadge = solidBadge(string(e.Type), toneOf(e.Type.Treatment()))
	card.DateLine = DateLine(e.Date, e.EndDate)
	card.Details = append(card.Details,
		dto.DetailRow{Icon: "calendar", Text: card.DateLine},
		dto.DetailRow{Icon: "clock", Text: e.Time},
		dto.DetailRow{Icon: "map-pin", Text: e.Venue},
	)
	if e.MaxParticipants != nil && *e.MaxParticipants > 0 {
		card.Details = append(card.Details, dto.DetailRow{Icon: "users", Text: fmt.Sprintf("Max %d participants", *e.MaxParticipants)})
	}
	if e.PrizePool != nil && *e.PrizePool != "" {
		card.Details = append(card.Details, dto.DetailRow{Icon: "trophy", Text: "Prize Pool: " + *e.PrizePool})
	}
	card.Actions = append(card.Actions, dto.Action{Label: labelRegister, Inert: true})
	return card
}

// RenderProjectCard renders one project. index only affects animation timing.
func (r *CardRenderer) RenderProjectCard(p models.Project, index int) dto.ProjectCard {
	category, _ := p.Category.Treatment()
	card := dto.ProjectCard{
		ID:               p.ID,
		Image:            p.Image,
		ImageAlt:         p.Name,
		CategoryIcon:     category.Icon,
		StatusBadge:      solidBadge(string(p.Status), toneOf(p.Status.Treatment())),
		CategoryBadge:    dto.Badge{Label: string(p.Category), Tone: models.ToneCyan, Style: dto.BadgeStyleOutline},
		Title:            p.Name,
		DateLine:         DateLine(p.StartDate, p.EndDate),
		Description:      p.Description,
		TechBadges:       make([]dto.Badge, 0, len(p.TechStack)),
		Actions:          []dto.Action{},
		AnimationDelayMs: r.delay(index),
	}

	for _, tech := range p.TechStack {
		card.TechBadges = append(card.TechBadges, dto.Badge{Label: tech, Tone: models.ToneCyan, Style: dto.BadgeStyleSolid})
	}

	if link, ok := present(p.GitHubURL); ok {
		card.Actions = append(card.Actions, dto.Action{Label: labelCode, Icon: "github", Href: link, Tone: models.ToneBlue})
	}
	if link, ok := present(p.DemoURL); ok {
		card.Actions = append(card.Actions, dto.Action{Label: labelDemo, Icon: "external-link", Href: link, Tone: models.ToneGreen})
	}
	if link, ok := present(p.DocsURL); ok {
		card.Actions = append(card.Actions, dto.Action{Label: labelDocs, Icon: "file-text", Href: link, Tone: models.TonePurple})
	}
	return card
}

func solidBadge(label string, tone models.Tone) dto.Badge {
	return dto.Badge{Label: label, Tone: tone, Style: dto.BadgeStyleSolid}
}

func toneOf(t models.Treatment, ok bool) models.Tone {
	if !ok {
		return ""
	}
	return t.Tone
}

func present(v *string) (string, bool) {
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

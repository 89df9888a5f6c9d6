package dto

import (
	"strings"

	"github.com/noah-isme/techclub-site/internal/models"
)

// CardVariant selects how much of a record a card shows.
type CardVariant string

const (
	CardVariantFull      CardVariant = "full"
	CardVariantCondensed CardVariant = "condensed"
)

// BadgeStyle mirrors the two badge looks used on the site.
type BadgeStyle string

const (
	BadgeStyleSolid   BadgeStyle = "solid"
	BadgeStyleOutline BadgeStyle = "outline"
)

// Badge is a small label. Tone is empty when the labelled value has no
// classification treatment.
type Badge struct {
	Label string      `json:"label"`
	Tone  models.Tone `json:"tone,omitempty"`
	Style BadgeStyle  `json:"style"`
}

// Class returns the CSS classes for the badge.
func (b Badge) Class() string {
	classes := []string{"badge", "badge-" + string(b.Style)}
	if tc := b.Tone.Class(); tc != "" {
		classes = append(classes, tc)
	}
	return strings.Join(classes, " ")
}

// DetailRow is one icon + text line in a card body.
type DetailRow struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Action is a card button. Inert actions have no target and render as plain
// buttons.
type Action struct {
	Label string      `json:"label"`
	Icon  string      `json:"icon,omitempty"`
	Href  string      `json:"href,omitempty"`
	Tone  models.Tone `json:"tone,omitempty"`
	Inert bool        `json:"inert,omitempty"`
}

// EventCard is the rendered view of one event.
type EventCard struct {
	ID               int         `json:"id"`
	Variant          CardVariant `json:"variant"`
	Image            string      `json:"image"`
	ImageAlt         string      `json:"imageAlt"`
	TypeBadge        Badge       `json:"typeBadge"`
	StatusBadge      Badge       `json:"statusBadge"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	DateLine         string      `json:"dateLine"`
	Details          []DetailRow `json:"details"`
	Actions          []Action    `json:"actions"`
	AnimationDelayMs int         `json:"animationDelayMs"`
}

// ProjectCard is the rendered view of one project.
type ProjectCard struct {
	ID               int         `json:"id"`
	Image            string      `json:"image"`
	ImageAlt         string      `json:"imageAlt"`
	CategoryIcon     string      `json:"categoryIcon,omitempty"`
	StatusBadge      Badge       `json:"statusBadge"`
	CategoryBadge    Badge       `json:"categoryBadge"`
	Title            string      `json:"title"`
	DateLine         string      `json:"dateLine"`
	Description      string      `json:"description"`
	TechBadges       []Badge     `json:"techBadges"`
	Actions          []Action    `json:"actions"`
	AnimationDelayMs int         `json:"animationDelayMs"`
}

// Hero is the page heading block.
type Hero struct {
	Title string `json:"title"`
	Intro string `json:"intro"`
}

// EventSection is a labelled grid of event cards.
type EventSection struct {
	Key     models.EventGroup `json:"key"`
	Heading string            `json:"heading"`
	Columns int               `json:"columns"`
	Cards   []EventCard       `json:"cards"`
}

// EventsPage is the composed events page.
type EventsPage struct {
	Hero     Hero         `json:"hero"`
	Upcoming EventSection `json:"upcoming"`
	Past     EventSection `json:"past"`
}

// Feature is one callout in the project call-to-action.
type Feature struct {
	Icon  string      `json:"icon"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Tone  models.Tone `json:"tone"`
}

// CallToAction is the static block under the project grid.
type CallToAction struct {
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Features []Feature `json:"features"`
	Action   Action    `json:"action"`
}

// ProjectsPage is the composed projects page.
type ProjectsPage struct {
	Hero         Hero          `json:"hero"`
	Columns      int           `json:"columns"`
	Cards        []ProjectCard `json:"cards"`
	CallToAction CallToAction  `json:"callToAction"`
}

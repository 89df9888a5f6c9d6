package models

// Tone is a style token understood by the stylesheet as the class "tone-<name>".
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneBlue   Tone = "blue"
	TonePurple Tone = "purple"
	ToneGray   Tone = "gray"
	ToneCyan   Tone = "cyan"
	ToneYellow Tone = "yellow"
)

// Class returns the CSS class for the tone, or "" for the zero tone.
func (t Tone) Class() string {
	if t == "" {
		return ""
	}
	return "tone-" + string(t)
}

// Treatment is the display treatment attached to a classified value.
type Treatment struct {
	Tone Tone   `json:"tone,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Treatment maps the status to its badge tone. ok is false for values outside
// the known set.
func (s EventStatus) Treatment() (Treatment, bool) {
	switch s {
	case EventStatusOpen:
		return Treatment{Tone: ToneGreen}, true
	case EventStatusLive:
		return Treatment{Tone: ToneBlue}, true
	case EventStatusUpcoming:
		return Treatment{Tone: TonePurple}, true
	case EventStatusEnded:
		return Treatment{Tone: ToneGray}, true
	}
	return Treatment{}, false
}

// Treatment maps the event type to its badge tone.
func (t EventType) Treatment() (Treatment, bool) {
	switch t {
	case EventTypeWorkshop:
		return Treatment{Tone: ToneGreen}, true
	case EventTypeHackathon:
		return Treatment{Tone: TonePurple}, true
	case EventTypeCompetition:
		return Treatment{Tone: ToneBlue}, true
	case EventTypeSeminar:
		return Treatment{Tone: ToneCyan}, true
	case EventTypeConference:
		return Treatment{Tone: ToneYellow}, true
	}
	return Treatment{}, false
}

// Treatment maps the project status to its badge tone.
func (s ProjectStatus) Treatment() (Treatment, bool) {
	switch s {
	case ProjectStatusActive:
		return Treatment{Tone: ToneGreen}, true
	case ProjectStatusCompleted:
		return Treatment{Tone: ToneCyan}, true
	case ProjectStatusDevelopment:
		return Treatment{Tone: TonePurple}, true
	case ProjectStatusResearch:
		return Treatment{Tone: ToneBlue}, true
	case ProjectStatusBeta:
		return Treatment{Tone: ToneYellow}, true
	}
	return Treatment{}, false
}

// Treatment maps the category to its icon glyph.
func (c ProjectCategory) Treatment() (Treatment, bool) {
	switch c {
	case ProjectCategoryHardware:
		return Treatment{Icon: "⚡"}, true
	case ProjectCategorySoftware:
		return Treatment{Icon: "💻"}, true
	case ProjectCategoryMixed:
		return Treatment{Icon: "🔧"}, true
	case ProjectCategoryAIML:
		return Treatment{Icon: "🧠"}, true
	case ProjectCategoryRobotics:
		return Treatment{Icon: "🤖"}, true
	case ProjectCategoryIoT:
		return Treatment{Icon: "📡"}, true
	}
	return Treatment{}, false
}

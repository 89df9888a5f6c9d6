package models

// EventStatus is the lifecycle state shown on an event card.
type EventStatus string

const (
	EventStatusOpen     EventStatus = "Open"
	EventStatusLive     EventStatus = "Live"
	EventStatusUpcoming EventStatus = "Upcoming"
	EventStatusEnded    EventStatus = "Ended"
)

// EventStatuses lists every known status in display order.
var EventStatuses = []EventStatus{EventStatusOpen, EventStatusLive, EventStatusUpcoming, EventStatusEnded}

// EventType classifies the format of an event.
type EventType string

const (
	EventTypeWorkshop    EventType = "Workshop"
	EventTypeHackathon   EventType = "Hackathon"
	EventTypeCompetition EventType = "Competition"
	EventTypeSeminar     EventType = "Seminar"
	EventTypeConference  EventType = "Conference"
)

// EventTypes lists every known event type.
var EventTypes = []EventType{EventTypeWorkshop, EventTypeHackathon, EventTypeCompetition, EventTypeSeminar, EventTypeConference}

// Event is one club event. Optional fields are nil when absent.
type Event struct {
	ID              int         `db:"id" json:"id" validate:"required"`
	Name            string      `db:"name" json:"name" validate:"required"`
	Description     string      `db:"description" json:"description" validate:"required"`
	Image           string      `db:"image" json:"image" validate:"required"`
	Date            string      `db:"start_date" json:"date" validate:"required"`
	EndDate         *string     `db:"end_date" json:"endDate,omitempty" validate:"omitempty,min=1"`
	Time            string      `db:"time_label" json:"time" validate:"required"`
	Venue           string      `db:"venue" json:"venue" validate:"required"`
	Status          EventStatus `db:"status" json:"status" validate:"required,event_status"`
	Type            EventType   `db:"event_type" json:"type" validate:"required,event_type"`
	MaxParticipants *int        `db:"max_participants" json:"maxParticipants,omitempty" validate:"omitempty,gt=0"`
	PrizePool       *string     `db:"prize_pool" json:"prizePool,omitempty" validate:"omitempty,min=1"`
}

// Valid reports whether the status is a member of the known set.
func (s EventStatus) Valid() bool {
	_, ok := s.Treatment()
	return ok
}

// Valid reports whether the type is a member of the known set.
func (t EventType) Valid() bool {
	_, ok := t.Treatment()
	return ok
}

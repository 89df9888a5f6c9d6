package models

// Catalog is an immutable snapshot of everything the site displays. Upcoming
// and Past are already in display order.
type Catalog struct {
	UpcomingEvents []Event   `json:"upcomingEvents"`
	PastEvents     []Event   `json:"pastEvents"`
	Projects       []Project `json:"projects"`
}

// EventGroup names one of the two event partitions.
type EventGroup string

const (
	EventGroupUpcoming EventGroup = "upcoming"
	EventGroupPast     EventGroup = "past"
)

// PartitionEvents splits a single ordered collection into upcoming and past
// events. Ended events are past; everything else, including unknown statuses,
// is upcoming. Relative order is preserved in both groups.
func PartitionEvents(events []Event) (upcoming, past []Event) {
	upcoming = make([]Event, 0, len(events))
	past = make([]Event, 0)
	for _, e := range events {
		if e.Status == EventStatusEnded {
			past = append(past, e)
			continue
		}
		upcoming = append(upcoming, e)
	}
	return upcoming, past
}

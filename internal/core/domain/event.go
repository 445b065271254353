package domain

// Event is a storefront event (exhibition, promotion day, ...).
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Activity belongs to an event.
type Activity struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EventInput creates an event or an activity.
type EventInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// EventDetails is an event with its activities.
type EventDetails struct {
	Event      Event      `json:"event"`
	Activities []Activity `json:"activities"`
}

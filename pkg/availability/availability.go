package availability

import "time"

// Room states.
const (
	StateFree = "free"
	StateBusy = "busy"
)

// RoomStatus is the classification of a single room for one report cycle.
// Built fresh every cycle, never mutated afterwards.
type RoomStatus struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
	// Until is when the state changes: the end of the current booking for a
	// busy room, the start of the next booking for a free one. Absent when
	// the room has no reported intervals at all.
	Until *time.Time `json:"until,omitempty"`
	// ReserveURL opens the provider's event-creation page pre-filled with
	// the room and a sensible time slot.
	ReserveURL string `json:"create_url"`
}

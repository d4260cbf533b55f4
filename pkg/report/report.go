package report

import (
	"github.com/cosroom/cosroom/pkg/availability"
	"github.com/cosroom/cosroom/pkg/calendar"
)

// Report is the availability snapshot handed to presentation layers. It owns
// no network resources and serializes directly.
type Report struct {
	// Free and Busy partition the room calendars present in the free/busy
	// result, each sorted by room name.
	Free []availability.RoomStatus `json:"free"`
	Busy []availability.RoomStatus `json:"busy"`
	// Pairs maps person calendar ids to their upcoming "available to pair"
	// announcements. Deriving concrete open windows from them is the
	// consumer's job.
	Pairs map[string][]calendar.Event `json:"pairs"`
	// NextEvent is the next event the user should actually attend, if any.
	NextEvent *calendar.Event `json:"next_event"`
	// Email is the authenticated identity's primary calendar id.
	Email string `json:"email"`
}

package next_event

import (
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
)

// Find scans the primary calendar's upcoming events, in start-time order, and
// returns the first one the user should actually attend, or nil when there is
// none. An event is skipped when it:
//   - is an all-day event,
//   - is marked transparent (the owner opted out of busy status),
//   - already started (an in-progress meeting is not "next"),
//   - was declined by the owner's own attendee entry.
func Find(events []calendar.Event, ownerEmail string, now time.Time) *calendar.Event {
	for _, event := range events {
		if event.AllDay {
			continue
		}
		if event.Transparent {
			continue
		}
		if event.StartTime.Before(now) {
			continue
		}
		if event.DeclinedBy(ownerEmail) {
			continue
		}
		return &event
	}
	return nil
}

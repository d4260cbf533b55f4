package calendar

import (
	"strings"
	"time"
)

type Attendee struct {
	Email          string `json:"email"`
	ResponseStatus string `json:"responseStatus"`
}

// Event is a read-only, provider-owned calendar event.
type Event struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end"`
	AllDay    bool      `json:"allDay"`
	// Transparent means the owner marked themselves available for the
	// duration of the event.
	Transparent bool       `json:"transparent"`
	Attendees   []Attendee `json:"attendees,omitempty"`
}

// SelfAttendee looks up the attendee entry belonging to the given email.
// Emails are compared case-folded; providers are not consistent about casing.
func (e Event) SelfAttendee(email string) (Attendee, bool) {
	for _, a := range e.Attendees {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return Attendee{}, false
}

// DeclinedBy reports whether the given identity declined the event.
func (e Event) DeclinedBy(email string) bool {
	self, ok := e.SelfAttendee(email)
	return ok && self.ResponseStatus == ResponseDeclined
}

// Overlaps reports whether the event intersects [start, end).
func (e Event) Overlaps(start, end time.Time) bool {
	return e.StartTime.Before(end) && e.EndTime.After(start)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package calendar

import (
	"context"
	"time"
)

// Access roles reported by the provider for a calendar.
const (
	AccessRoleOwner          = "owner"
	AccessRoleWriter         = "writer"
	AccessRoleReader         = "reader"
	AccessRoleFreeBusyReader = "freeBusyReader"
)

// Attendee response statuses.
const (
	ResponseAccepted    = "accepted"
	ResponseDeclined    = "declined"
	ResponseTentative   = "tentative"
	ResponseNeedsAction = "needsAction"
)

// Calendar is a snapshot of one entry from the provider's calendar list.
type Calendar struct {
	ID         string
	Summary    string
	AccessRole string
	Primary    bool
	Selected   bool
	Hidden     bool
}

// CalendarPage is one page of the calendar list. NextPageToken is empty on
// the last page.
type CalendarPage struct {
	Items         []Calendar
	NextPageToken string
}

// BusyInterval is a single busy period reported by a free/busy query,
// ordered by start time within a calendar.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// EventQuery narrows an event listing. Events are always requested ordered
// by start time with recurring events expanded to single instances.
type EventQuery struct {
	TimeMin    time.Time
	Query      string
	MaxResults int64
}

// DataSource is the capability an availability report is computed from. It is
// assumed to be already authenticated; implementations surface
// ErrUnauthenticated when that assumption does not hold.
type DataSource interface {
	// ListCalendars returns one page of the calendar list, including hidden
	// calendars (some room calendars are hidden by default). An empty
	// pageToken requests the first page.
	ListCalendars(ctx context.Context, pageToken string) (CalendarPage, error)

	// QueryFreeBusy returns the busy intervals per calendar id within
	// [timeMin, timeMax), sorted by start time.
	QueryFreeBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]BusyInterval, error)

	// ListEvents returns the calendar's events matching the query, ordered
	// by start time.
	ListEvents(ctx context.Context, calendarID string, q EventQuery) ([]Event, error)
}

// DataSourceProvider hands out an authenticated DataSource for the current
// request, or ErrUnauthenticated when there is none.
type DataSourceProvider interface {
	DataSource(ctx context.Context) (DataSource, error)
}

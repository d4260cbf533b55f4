package calendar

import (
	"context"
	"sort"
	"time"
)

// StubDataSource is an in-memory DataSource for tests. It records how many
// calls of each kind were made so tests can assert on short-circuit behavior.
type StubDataSource struct {
	Calendars []Calendar
	// PageSize > 0 splits the calendar list into pages of that size.
	PageSize int
	Busy     map[string][]BusyInterval
	// Events holds the full event list per calendar id.
	Events map[string][]Event

	ListCalendarCalls int
	FreeBusyCalls     int
	ListEventCalls    int

	Err error
}

func NewStubDataSource() *StubDataSource {
	return &StubDataSource{
		Busy:   map[string][]BusyInterval{},
		Events: map[string][]Event{},
	}
}

func (s *StubDataSource) ListCalendars(_ context.Context, pageToken string) (CalendarPage, error) {
	s.ListCalendarCalls++
	if s.Err != nil {
		return CalendarPage{}, s.Err
	}
	if s.PageSize <= 0 {
		return CalendarPage{Items: s.Calendars}, nil
	}
	offset := 0
	if pageToken != "" {
		for i := range s.Calendars {
			if s.Calendars[i].ID == pageToken {
				offset = i
				break
			}
		}
	}
	end := offset + s.PageSize
	if end >= len(s.Calendars) {
		return CalendarPage{Items: s.Calendars[offset:]}, nil
	}
	return CalendarPage{Items: s.Calendars[offset:end], NextPageToken: s.Calendars[end].ID}, nil
}

func (s *StubDataSource) QueryFreeBusy(_ context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]BusyInterval, error) {
	s.FreeBusyCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	result := map[string][]BusyInterval{}
	for _, id := range calendarIDs {
		intervals := make([]BusyInterval, 0)
		for _, b := range s.Busy[id] {
			if b.Start.Before(timeMax) && b.End.After(timeMin) {
				intervals = append(intervals, b)
			}
		}
		result[id] = intervals
	}
	return result, nil
}

func (s *StubDataSource) ListEvents(_ context.Context, calendarID string, q EventQuery) ([]Event, error) {
	s.ListEventCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	var events []Event
	for _, e := range s.Events[calendarID] {
		if e.EndTime.Before(q.TimeMin) {
			continue
		}
		if q.Query != "" && !matchesQuery(e, q.Query) {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	if q.MaxResults > 0 && int64(len(events)) > q.MaxResults {
		events = events[:q.MaxResults]
	}
	return events, nil
}

func matchesQuery(e Event, query string) bool {
	return containsFold(e.Summary, query)
}

package pairing

import (
	"context"
	"fmt"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// maxPairingResults bounds the announcement query per person calendar.
const maxPairingResults = 20

// maxScanResults bounds the full-schedule query used for window derivation.
const maxScanResults = 50

type Service struct {
	ds calendar.DataSource
	// marker is the text filter for "available to pair" announcements.
	// TODO: refine the search; "available" also matches e.g. "available for
	// questions".
	marker string
}

func NewService(ds calendar.DataSource, marker string) *Service {
	return &Service{ds: ds, marker: marker}
}

// AvailablePairs queries each person calendar for upcoming pairing
// announcements, starting from the next weekday. Calendars without any
// matching events are omitted from the result.
func (s *Service) AvailablePairs(ctx context.Context, people []calendar.Calendar, now time.Time) (map[string][]calendar.Event, error) {
	timeMin := NextWeekday(now)
	pairs := map[string][]calendar.Event{}
	for _, person := range people {
		events, err := s.ds.ListEvents(ctx, person.ID, calendar.EventQuery{
			TimeMin:    timeMin,
			Query:      s.marker,
			MaxResults: maxPairingResults,
		})
		if err != nil {
			return nil, fmt.Errorf("unable to list pairing events for %s: %w", person.ID, err)
		}
		if len(events) > 0 {
			pairs[person.ID] = events
		}
	}
	log.Debugf("found pairing announcements for %d of %d people", len(pairs), len(people))
	return pairs, nil
}

// NextPeriod derives the earliest open pairing window for one person. It
// needs the person's full schedule, not just the announcements, because
// ordinary events overlapping an availability block consume it.
func (s *Service) NextPeriod(ctx context.Context, calendarID string, now time.Time) (*Window, error) {
	events, err := s.ds.ListEvents(ctx, calendarID, calendar.EventQuery{
		TimeMin:    NextWeekday(now),
		MaxResults: maxScanResults,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list events for %s: %w", calendarID, err)
	}
	return NextPairingPeriod(events, s.marker), nil
}

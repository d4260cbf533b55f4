package directory

import (
	"context"
	"fmt"
	"iter"
	"net/mail"
	"strings"

	"github.com/cosroom/cosroom/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// ErrNoPrimaryCalendar means the data source did not expose a primary
// calendar for the authenticated identity. That is a workspace
// misconfiguration, not a transient failure.
var ErrNoPrimaryCalendar = fmt.Errorf("no primary calendar found")

// groupCalendarDomain marks shared/group calendar ids, which look like email
// addresses but do not belong to a person.
const groupCalendarDomain = "group.calendar.google.com"

// Resolver lists and classifies the calendars visible to the authenticated
// identity.
type Resolver struct {
	ds calendar.DataSource
}

func NewResolver(ds calendar.DataSource) *Resolver {
	return &Resolver{ds: ds}
}

// pages is a restartable sequence of calendar-list pages: it pulls pages from
// the data source while a continuation token is present. Each range over the
// sequence starts from the first page again.
func (r *Resolver) pages(ctx context.Context) iter.Seq2[calendar.CalendarPage, error] {
	return func(yield func(calendar.CalendarPage, error) bool) {
		pageToken := ""
		for {
			page, err := r.ds.ListCalendars(ctx, pageToken)
			if err != nil {
				yield(calendar.CalendarPage{}, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if page.NextPageToken == "" {
				return
			}
			pageToken = page.NextPageToken
		}
	}
}

// AllCalendars returns the full calendar list, hidden calendars included,
// de-duplicated by id in first-seen order.
func (r *Resolver) AllCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	var all []calendar.Calendar
	seen := map[string]struct{}{}
	for page, err := range r.pages(ctx) {
		if err != nil {
			return nil, fmt.Errorf("unable to list calendars: %w", err)
		}
		for _, cal := range page.Items {
			if _, ok := seen[cal.ID]; ok {
				continue
			}
			seen[cal.ID] = struct{}{}
			all = append(all, cal)
		}
	}
	log.Debugf("resolved %d calendars", len(all))
	return all, nil
}

// PrimaryCalendar returns the single calendar marked primary.
func PrimaryCalendar(list []calendar.Calendar) (calendar.Calendar, error) {
	for _, cal := range list {
		if cal.Primary {
			return cal, nil
		}
	}
	return calendar.Calendar{}, ErrNoPrimaryCalendar
}

// Naive, but an address the provider hands out as a calendar id is already
// well-formed; this only needs to separate emails from opaque resource ids.
func isEmail(s string) bool {
	if s == "" || !strings.Contains(s, "@") {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

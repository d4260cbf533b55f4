package google

import (
	"context"
	"fmt"
	"time"

	cal "github.com/cosroom/cosroom/pkg/calendar"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
)

// allDayFormat is how the provider renders date-only (all-day) event starts.
const allDayFormat = "2006-01-02"

// dataSource adapts the Google Calendar API to calendar.DataSource.
type dataSource struct {
	service *calendar.Service
}

func (d *dataSource) ListCalendars(ctx context.Context, pageToken string) (cal.CalendarPage, error) {
	// Hidden calendars are requested too: room calendars are often hidden by
	// default.
	call := d.service.CalendarList.List().ShowHidden(true).Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	response, err := call.Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendar list: %v", err)
		log.Error(err)
		return cal.CalendarPage{}, err
	}

	items := make([]cal.Calendar, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, cal.Calendar{
			ID:         item.Id,
			Summary:    item.Summary,
			AccessRole: item.AccessRole,
			Primary:    item.Primary,
			Selected:   item.Selected,
			Hidden:     item.Hidden,
		})
	}
	return cal.CalendarPage{Items: items, NextPageToken: response.NextPageToken}, nil
}

func (d *dataSource) QueryFreeBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]cal.BusyInterval, error) {
	items := make([]*calendar.FreeBusyRequestItem, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		items = append(items, &calendar.FreeBusyRequestItem{Id: id})
	}

	response, err := d.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("free/busy query failed: %v", err)
		log.Error(err)
		return nil, err
	}

	busyByID := make(map[string][]cal.BusyInterval, len(response.Calendars))
	for id, calendarData := range response.Calendars {
		intervals := make([]cal.BusyInterval, 0, len(calendarData.Busy))
		for _, period := range calendarData.Busy {
			start, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				return nil, fmt.Errorf("malformed busy interval start for %s: %v", id, err)
			}
			end, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				return nil, fmt.Errorf("malformed busy interval end for %s: %v", id, err)
			}
			intervals = append(intervals, cal.BusyInterval{Start: start, End: end})
		}
		busyByID[id] = intervals
	}
	return busyByID, nil
}

func (d *dataSource) ListEvents(ctx context.Context, calendarID string, q cal.EventQuery) ([]cal.Event, error) {
	call := d.service.Events.List(calendarID).
		OrderBy("startTime").
		SingleEvents(true).
		TimeMin(q.TimeMin.Format(time.RFC3339)).
		Context(ctx)
	if q.Query != "" {
		call = call.Q(q.Query)
	}
	if q.MaxResults > 0 {
		call = call.MaxResults(q.MaxResults)
	}

	response, err := call.Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events for %s: %v", calendarID, err)
		log.Error(err)
		return nil, err
	}

	events := make([]cal.Event, 0, len(response.Items))
	for _, item := range response.Items {
		event, err := googleEventToEvent(item)
		if err != nil {
			return nil, fmt.Errorf("malformed event in %s: %v", calendarID, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func googleEventToEvent(item *calendar.Event) (cal.Event, error) {
	event := cal.Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Transparent: item.Transparency == "transparent",
	}

	var err error
	if item.Start != nil && item.Start.DateTime != "" {
		event.StartTime, err = time.Parse(time.RFC3339, item.Start.DateTime)
	} else if item.Start != nil {
		event.AllDay = true
		event.StartTime, err = time.Parse(allDayFormat, item.Start.Date)
	}
	if err != nil {
		return cal.Event{}, err
	}
	if item.End != nil && item.End.DateTime != "" {
		event.EndTime, err = time.Parse(time.RFC3339, item.End.DateTime)
	} else if item.End != nil {
		event.EndTime, err = time.Parse(allDayFormat, item.End.Date)
	}
	if err != nil {
		return cal.Event{}, err
	}

	for _, attendee := range item.Attendees {
		event.Attendees = append(event.Attendees, cal.Attendee{
			Email:          attendee.Email,
			ResponseStatus: attendee.ResponseStatus,
		})
	}
	return event, nil
}

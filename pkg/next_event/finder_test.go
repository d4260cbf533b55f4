package next_event

import (
	"testing"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerEmail = "me@cos.io"

var now = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

func timed(summary string, start time.Time) calendar.Event {
	return calendar.Event{
		Summary:   summary,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	}
}

func TestFind(t *testing.T) {

	t.Run("should return the first upcoming event", func(t *testing.T) {
		events := []calendar.Event{
			timed("standup", now.Add(time.Hour)),
			timed("retro", now.Add(2 * time.Hour)),
		}

		next := Find(events, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "standup", next.Summary)
	})

	t.Run("should skip all-day events", func(t *testing.T) {
		allDay := calendar.Event{Summary: "conference", StartTime: now, AllDay: true}
		events := []calendar.Event{allDay, timed("standup", now.Add(time.Hour))}

		next := Find(events, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "standup", next.Summary)
	})

	t.Run("should skip transparent events", func(t *testing.T) {
		transparent := timed("focus time", now.Add(30 * time.Minute))
		transparent.Transparent = true
		events := []calendar.Event{transparent, timed("standup", now.Add(time.Hour))}

		next := Find(events, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "standup", next.Summary)
	})

	t.Run("should skip an in-progress meeting", func(t *testing.T) {
		events := []calendar.Event{
			timed("in progress", now.Add(-10*time.Minute)),
			timed("standup", now.Add(time.Hour)),
		}

		next := Find(events, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "standup", next.Summary)
	})

	t.Run("should skip events the owner declined", func(t *testing.T) {
		declined := timed("optional sync", now.Add(30 * time.Minute))
		declined.Attendees = []calendar.Attendee{
			{Email: "someone@cos.io", ResponseStatus: calendar.ResponseAccepted},
			{Email: "ME@cos.io", ResponseStatus: calendar.ResponseDeclined},
		}
		events := []calendar.Event{declined, timed("standup", now.Add(time.Hour))}

		next := Find(events, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "standup", next.Summary)
	})

	t.Run("should not skip events another attendee declined", func(t *testing.T) {
		event := timed("sync", now.Add(30 * time.Minute))
		event.Attendees = []calendar.Attendee{
			{Email: "someone@cos.io", ResponseStatus: calendar.ResponseDeclined},
			{Email: ownerEmail, ResponseStatus: calendar.ResponseAccepted},
		}

		next := Find([]calendar.Event{event}, ownerEmail, now)

		require.NotNil(t, next)
		assert.Equal(t, "sync", next.Summary)
	})

	t.Run("should return nil when only a declined event remains", func(t *testing.T) {
		declined := timed("optional sync", now.Add(30 * time.Minute))
		declined.Attendees = []calendar.Attendee{
			{Email: ownerEmail, ResponseStatus: calendar.ResponseDeclined},
		}

		assert.Nil(t, Find([]calendar.Event{declined}, ownerEmail, now))
	})

	t.Run("should return nil for an empty event list", func(t *testing.T) {
		assert.Nil(t, Find(nil, ownerEmail, now))
	})
}

package pairing

import (
	"context"
	"testing"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailablePairs(t *testing.T) {
	// Monday
	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	people := []calendar.Calendar{
		{ID: "ada@cos.io", AccessRole: calendar.AccessRoleReader, Selected: true},
		{ID: "grace@cos.io", AccessRole: calendar.AccessRoleReader, Selected: true},
	}

	t.Run("should keep only people with matching announcements", func(t *testing.T) {
		ds := calendar.NewStubDataSource()
		ds.Events["ada@cos.io"] = []calendar.Event{
			{Summary: "Available for pairing", StartTime: now.Add(2 * time.Hour), EndTime: now.Add(4 * time.Hour)},
		}
		ds.Events["grace@cos.io"] = []calendar.Event{
			{Summary: "deep work", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		}

		pairs, err := NewService(ds, "available").AvailablePairs(context.Background(), people, now)

		require.NoError(t, err)
		require.Len(t, pairs, 1)
		assert.Len(t, pairs["ada@cos.io"], 1)
	})

	t.Run("should query each person calendar once", func(t *testing.T) {
		ds := calendar.NewStubDataSource()

		_, err := NewService(ds, "available").AvailablePairs(context.Background(), people, now)

		require.NoError(t, err)
		assert.Equal(t, 2, ds.ListEventCalls)
	})

	t.Run("should propagate query failures", func(t *testing.T) {
		ds := calendar.NewStubDataSource()
		ds.Err = assert.AnError

		_, err := NewService(ds, "available").AvailablePairs(context.Background(), people, now)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNextPeriod(t *testing.T) {
	// Monday
	now := time.Date(2025, time.March, 3, 7, 0, 0, 0, time.UTC)

	t.Run("should carve the announcement by the person's other events", func(t *testing.T) {
		ds := calendar.NewStubDataSource()
		ds.Events["ada@cos.io"] = []calendar.Event{
			{Summary: "Available for pairing", StartTime: at(8), EndTime: at(12)},
			{Summary: "standup", StartTime: at(8), EndTime: at(9)},
		}

		window, err := NewService(ds, "available").NextPeriod(context.Background(), "ada@cos.io", now)

		require.NoError(t, err)
		require.NotNil(t, window)
		assert.Equal(t, at(9), window.Start)
		assert.Equal(t, at(12), window.End)
	})

	t.Run("should return nil without announcements", func(t *testing.T) {
		ds := calendar.NewStubDataSource()
		ds.Events["ada@cos.io"] = []calendar.Event{
			{Summary: "standup", StartTime: at(8), EndTime: at(9)},
		}

		window, err := NewService(ds, "available").NextPeriod(context.Background(), "ada@cos.io", now)

		require.NoError(t, err)
		assert.Nil(t, window)
	})
}

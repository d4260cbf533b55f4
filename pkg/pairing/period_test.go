package pairing

import (
	"testing"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marker = "available"

func at(hour int) time.Time {
	return time.Date(2025, time.March, 3, hour, 0, 0, 0, time.UTC)
}

func block(start, end time.Time) calendar.Event {
	return calendar.Event{Summary: "Available for pairing", StartTime: start, EndTime: end}
}

func meeting(summary string, start, end time.Time) calendar.Event {
	return calendar.Event{Summary: summary, StartTime: start, EndTime: end}
}

func TestNextPairingPeriod(t *testing.T) {

	t.Run("should return the whole block when nothing conflicts", func(t *testing.T) {
		events := []calendar.Event{block(at(8), at(12))}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(8), window.Start)
		assert.Equal(t, at(12), window.End)
	})

	t.Run("should start after a conflict at the head of the block", func(t *testing.T) {
		events := []calendar.Event{
			block(at(8), at(12)),
			meeting("standup", at(8), at(9)),
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(9), window.Start)
		assert.Equal(t, at(12), window.End)
	})

	t.Run("should skip past back-to-back conflicts", func(t *testing.T) {
		events := []calendar.Event{
			block(at(8), at(12)),
			meeting("standup", at(8), at(9)),
			meeting("1:1", at(9), at(10)),
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(10), window.Start)
		assert.Equal(t, at(12), window.End)
	})

	t.Run("should end at the next conflict when the head of the block is open", func(t *testing.T) {
		events := []calendar.Event{
			block(at(8), at(12)),
			meeting("review", at(10), at(11)),
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(8), window.Start)
		assert.Equal(t, at(10), window.End)
	})

	t.Run("should return nil when conflicts consume the whole block", func(t *testing.T) {
		events := []calendar.Event{
			block(at(8), at(10)),
			meeting("workshop", at(8), at(10)),
		}

		assert.Nil(t, NextPairingPeriod(events, marker))
	})

	t.Run("should return nil when no availability block exists", func(t *testing.T) {
		events := []calendar.Event{meeting("standup", at(8), at(9))}

		assert.Nil(t, NextPairingPeriod(events, marker))
	})

	t.Run("should ignore events outside the block", func(t *testing.T) {
		events := []calendar.Event{
			block(at(8), at(12)),
			meeting("early sync", at(6), at(7)),
			meeting("late sync", at(13), at(14)),
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(8), window.Start)
		assert.Equal(t, at(12), window.End)
	})

	t.Run("should pick the earliest window across disjoint blocks", func(t *testing.T) {
		events := []calendar.Event{
			block(at(14), at(16)),
			block(at(8), at(10)),
			meeting("workshop", at(8), at(10)),
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(14), window.Start)
	})

	t.Run("should match the marker case-insensitively", func(t *testing.T) {
		events := []calendar.Event{
			{Summary: "AVAILABLE to pair", StartTime: at(8), EndTime: at(9)},
		}

		window := NextPairingPeriod(events, marker)

		require.NotNil(t, window)
		assert.Equal(t, at(8), window.Start)
	})
}

package pairing

import (
	"sort"
	"strings"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
)

// Window is a maximal open sub-interval of an availability block.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NextPairingPeriod computes the earliest open pairing window from a person's
// events. Availability blocks are the events whose summary contains the
// marker; every other event overlapping a block consumes part of it.
// Disjoint conflicts carve a block into multiple candidates, of which the
// earliest by start time wins. Returns nil when no availability block exists
// or conflicts consume all of them.
func NextPairingPeriod(events []calendar.Event, marker string) *Window {
	var blocks, others []calendar.Event
	for _, event := range events {
		if isMarker(event, marker) {
			blocks = append(blocks, event)
		} else {
			others = append(others, event)
		}
	}
	if len(blocks) == 0 {
		return nil
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartTime.Before(blocks[j].StartTime)
	})

	var earliest *Window
	for _, block := range blocks {
		window := openWindow(block, others)
		if window == nil {
			continue
		}
		if earliest == nil || window.Start.Before(earliest.Start) {
			earliest = window
		}
	}
	return earliest
}

// openWindow subtracts conflicting events from one availability block and
// returns its earliest remaining sub-interval.
func openWindow(block calendar.Event, others []calendar.Event) *Window {
	var conflicts []calendar.Event
	for _, event := range others {
		if event.Overlaps(block.StartTime, block.EndTime) {
			conflicts = append(conflicts, event)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].StartTime.Before(conflicts[j].StartTime)
	})

	cursor := block.StartTime
	for _, conflict := range conflicts {
		if conflict.StartTime.After(cursor) {
			break
		}
		if conflict.EndTime.After(cursor) {
			cursor = conflict.EndTime
		}
	}
	if !cursor.Before(block.EndTime) {
		return nil
	}
	end := block.EndTime
	for _, conflict := range conflicts {
		if conflict.StartTime.After(cursor) && conflict.StartTime.Before(end) {
			end = conflict.StartTime
			break
		}
	}
	return &Window{Start: cursor, End: end}
}

func isMarker(event calendar.Event, marker string) bool {
	return strings.Contains(strings.ToLower(event.Summary), strings.ToLower(marker))
}

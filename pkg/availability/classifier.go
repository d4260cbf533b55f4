package availability

import (
	"sort"
	"time"

	"github.com/cosroom/cosroom/pkg/calendar"
)

const (
	// A booking starting within this window is treated as already occupying
	// the room, so a reservation made from the list cannot race the booking
	// at the boundary.
	busyThreshold = 5 * time.Minute
	// Free gaps longer than this get a capped 15-minute reservation slot
	// instead of the whole gap.
	longGap = time.Hour

	defaultSlot = 15 * time.Minute
)

// Classify splits the given room calendars into free and busy lists based on
// a free/busy query result. Only rooms present in the result are classified;
// both lists come back sorted by room name. The now instant is the single
// snapshot for the whole pass and must be the one the free/busy query was
// issued with.
//
// Only the first reported interval per room is inspected. Room calendars are
// single-purpose, so the earliest busy period determines the current state;
// with double-booked rooms this undercounts busy time.
func Classify(rooms []calendar.Calendar, busyByID map[string][]calendar.BusyInterval, now time.Time, accountIndex int) (free, busy []RoomStatus) {
	for _, room := range rooms {
		intervals, ok := busyByID[room.ID]
		if !ok {
			continue
		}
		if len(intervals) == 0 {
			free = append(free, RoomStatus{
				ID:    room.ID,
				Name:  room.Summary,
				State: StateFree,
				ReserveURL: EventURL(URLParams{
					CalendarID:   room.ID,
					Start:        now,
					End:          now.Add(defaultSlot),
					AccountIndex: accountIndex,
				}, now),
			})
			continue
		}

		next := intervals[0]
		if next.Start.Sub(now) < busyThreshold {
			until := next.End
			busy = append(busy, RoomStatus{
				ID:    room.ID,
				Name:  room.Summary,
				State: StateBusy,
				Until: &until,
				ReserveURL: EventURL(URLParams{
					CalendarID:   room.ID,
					Start:        next.End,
					End:          next.End.Add(defaultSlot),
					AccountIndex: accountIndex,
				}, now),
			})
			continue
		}

		reserveEnd := next.Start
		if next.Start.Sub(now) > longGap {
			reserveEnd = now.Add(defaultSlot)
		}
		until := next.Start
		free = append(free, RoomStatus{
			ID:    room.ID,
			Name:  room.Summary,
			State: StateFree,
			Until: &until,
			ReserveURL: EventURL(URLParams{
				CalendarID:   room.ID,
				Start:        now,
				End:          reserveEnd,
				AccountIndex: accountIndex,
			}, now),
		})
	}

	sortByName(free)
	sortByName(busy)
	return free, busy
}

func sortByName(statuses []RoomStatus) {
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})
}

package directory

import (
	"strings"

	"github.com/cosroom/cosroom/pkg/calendar"
)

// RoomNames is an immutable, case-insensitive set of room display names. It
// backs the fallback room classifier for providers that do not report the
// freeBusyReader access role on every resource calendar.
type RoomNames struct {
	names map[string]struct{}
}

func NewRoomNames(names []string) RoomNames {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return RoomNames{names: set}
}

func (r RoomNames) Contains(name string) bool {
	_, ok := r.names[strings.ToLower(name)]
	return ok
}

// RoomCalendars selects room calendars: access role freeBusyReader, or a
// display name in the known-rooms set. The union of both checks, because
// not all room calendars carry the freeBusyReader role.
func RoomCalendars(list []calendar.Calendar, known RoomNames) []calendar.Calendar {
	var rooms []calendar.Calendar
	for _, cal := range list {
		if cal.AccessRole == calendar.AccessRoleFreeBusyReader || known.Contains(cal.Summary) {
			rooms = append(rooms, cal)
		}
	}
	return rooms
}

// PersonCalendars selects calendars that belong to individual people whose
// calendars the user can see and has chosen to show. These feed the pairing
// scan only.
func PersonCalendars(list []calendar.Calendar, orgCalendarID string) []calendar.Calendar {
	var people []calendar.Calendar
	for _, cal := range list {
		if isPersonCalendar(cal, orgCalendarID) {
			people = append(people, cal)
		}
	}
	return people
}

func isPersonCalendar(cal calendar.Calendar, orgCalendarID string) bool {
	return cal.AccessRole == calendar.AccessRoleReader &&
		isEmail(cal.ID) &&
		cal.ID != orgCalendarID &&
		!strings.Contains(cal.ID, groupCalendarDomain) &&
		cal.Selected
}

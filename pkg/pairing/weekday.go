package pairing

import "time"

// NextWeekday returns the given instant unless it falls on a weekend, in
// which case the following Monday at 00:00 UTC. Pairing only happens on
// workdays, so this bounds the otherwise unbounded event query.
func NextWeekday(now time.Time) time.Time {
	t := now.UTC()
	if !isWeekend(t) {
		return t
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for isWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

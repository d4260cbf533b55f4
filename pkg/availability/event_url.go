package availability

import (
	"fmt"
	"net/url"
	"time"
)

// timeFormat is Google's basic UTC timestamp format for the dates parameter.
const timeFormat = "20060102T150405Z"

// URLParams describe the event-creation deep link to build. Zero values get
// defaults: Start = now, End = Start + 15 minutes, Text = "busy".
type URLParams struct {
	CalendarID  string
	Start       time.Time
	End         time.Time
	Text        string
	Description string
	// AccountIndex picks which of the user's linked Google accounts the link
	// opens against.
	AccountIndex int
}

// EventURL builds the URL for creating a new event reserving the room with
// the given calendar id.
func EventURL(p URLParams, now time.Time) string {
	start := p.Start
	if start.IsZero() {
		start = now
	}
	end := p.End
	if end.IsZero() {
		end = start.Add(defaultSlot)
	}
	text := p.Text
	if text == "" {
		text = "busy"
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", text)
	params.Set("dates", fmt.Sprintf("%s/%s", start.UTC().Format(timeFormat), end.UTC().Format(timeFormat)))
	params.Set("output", "xml")
	params.Set("add", p.CalendarID)
	if p.Description != "" {
		params.Set("details", url.QueryEscape(p.Description))
	}

	return fmt.Sprintf("https://calendar.google.com/calendar/b/%d/render?%s", p.AccountIndex, params.Encode())
}

package availability

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventURL(t *testing.T) {
	now := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

	t.Run("should default to a fifteen-minute slot starting now", func(t *testing.T) {
		raw := EventURL(URLParams{CalendarID: "room@example.com", AccountIndex: 1}, now)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/calendar/b/1/render", parsed.Path)
		params := parsed.Query()
		assert.Equal(t, "TEMPLATE", params.Get("action"))
		assert.Equal(t, "busy", params.Get("text"))
		assert.Equal(t, "xml", params.Get("output"))
		assert.Equal(t, "room@example.com", params.Get("add"))
		assert.Equal(t, "20250303T093000Z/20250303T094500Z", params.Get("dates"))
	})

	t.Run("should render times in UTC basic format", func(t *testing.T) {
		warsaw, err := time.LoadLocation("Europe/Warsaw")
		require.NoError(t, err)
		start := time.Date(2025, time.July, 1, 14, 0, 0, 0, warsaw)

		raw := EventURL(URLParams{CalendarID: "room@example.com", Start: start, End: start.Add(30 * time.Minute)}, now)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		// 14:00 CEST is 12:00 UTC.
		assert.Equal(t, "20250701T120000Z/20250701T123000Z", parsed.Query().Get("dates"))
	})

	t.Run("should percent-encode the optional description separately", func(t *testing.T) {
		raw := EventURL(URLParams{
			CalendarID:  "room@example.com",
			Description: "pairing on cosroom & coffee",
		}, now)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "pairing+on+cosroom+%26+coffee", parsed.Query().Get("details"))
	})

	t.Run("should open against the configured account index", func(t *testing.T) {
		raw := EventURL(URLParams{CalendarID: "room@example.com", AccountIndex: 0}, now)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/calendar/b/0/render", parsed.Path)
	})
}

package analysis

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is ISO-8601 with microseconds and the local offset.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func isoTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

var diaryTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp accepts the date forms diary records use: RFC 3339, a
// timestamp without zone (read as UTC), or a bare date.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range diaryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

package reconcile

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// parseLocal reads a date column and a clock column as one local date-time.
// Exports disagree on layout ("2024-01-05 08:00", "1/5/2024 8:00 AM"), so the
// layout is detected rather than configured.
func parseLocal(date, clock string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(strings.TrimSpace(date) + " " + strings.TrimSpace(clock))
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package core

import (
	"strings"
	"time"
)

// DeadlineLayout is the calendar date format used for deadlines.
const DeadlineLayout = "2006-01-02"

// ParseDeadline parses an ISO calendar date in the local zone.
func ParseDeadline(deadline string) (time.Time, bool) {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DeadlineLayout, deadline, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// OverdueAt reports whether the deadline's date lies strictly before the
// date of "now", both truncated to midnight in the local zone.
// An absent or unparseable deadline is never overdue.
func OverdueAt(deadline string, now time.Time) bool {
	t, ok := ParseDeadline(deadline)
	if !ok {
		return false
	}
	y, m, d := now.In(time.Local).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return t.Before(today)
}

package timeutil

import (
	"strings"
	"time"
)

const (
	// TimeLayout is the 24-hour kickoff clock (HH:MM).
	TimeLayout = "15:04"
	// DateLayout is the kickoff date (DD/MM/YYYY).
	DateLayout = "02/01/2006"
)

// FromUnix converts feed timestamps (seconds) to a time in loc. A nil loc means UTC.
func FromUnix(seconds int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(seconds, 0).In(loc)
}

// FormatKickoffTime renders the kickoff clock for a feed timestamp.
func FormatKickoffTime(seconds int64, loc *time.Location) string {
	return FromUnix(seconds, loc).Format(TimeLayout)
}

// FormatKickoffDate renders the kickoff date for a feed timestamp.
func FormatKickoffDate(seconds int64, loc *time.Location) string {
	return FromUnix(seconds, loc).Format(DateLayout)
}

// FormatBadgeDate renders the short upcoming-match label, e.g. "JAN 15TH 14:30".
func FormatBadgeDate(seconds int64, loc *time.Location) string {
	t := FromUnix(seconds, loc)
	month := strings.ToUpper(t.Format("Jan"))
	return month + " " + t.Format("2") + "TH " + t.Format(TimeLayout)
}

// ResolveLocation loads a named zone, falling back to UTC when empty or unknown.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

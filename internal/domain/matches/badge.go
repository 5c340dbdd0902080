package matches

import (
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/timeutil"
)

// BadgeText returns the card badge for a match. Upcoming matches show their kickoff in loc.
func BadgeText(m Match, loc *time.Location) string {
	switch Classify(m) {
	case DisplayLive:
		return "LIVE"
	case DisplayFinished:
		return "ENDED"
	case DisplayCanceled:
		return "CANCELED"
	case DisplayHalftime:
		return "HALF TIME"
	default:
		return timeutil.FormatBadgeDate(m.Timestamp, loc)
	}
}

// DisplayScore returns the home and away goals to show. Canceled and prematch matches show 0-0.
func DisplayScore(m Match) (int, int) {
	switch Classify(m) {
	case DisplayCanceled, DisplayPrematch:
		return 0, 0
	}
	return valueOrZero(m.HomeScore.Current), valueOrZero(m.AwayScore.Current)
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

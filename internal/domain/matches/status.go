package matches

import (
	"math"
	"strconv"
	"strings"
)

// Classify derives the display status of a match. The live indicator wins over the raw
// status for the transient states (cancellation, halftime); anything unrecognized is prematch.
func Classify(m Match) DisplayStatus {
	if m.LiveStatus.Sentinel() == SentinelCanceled {
		return DisplayCanceled
	}
	if m.Status.Type == StatusCanceled {
		return DisplayCanceled
	}
	if m.LiveStatus.Sentinel() == SentinelHalfTime {
		return DisplayHalftime
	}

	switch m.Status.Type {
	case StatusInProgress:
		return DisplayLive
	case StatusFinished:
		return DisplayFinished
	default:
		return DisplayPrematch
	}
}

// IsLive reports whether the match is actively being played (in progress, not at halftime).
func IsLive(m Match) bool {
	return m.Status.Type == StatusInProgress && m.LiveStatus != LiveHalfTime
}

// ClockToken returns the match clock carried by the live indicator.
// Sentinels yield false; any other string is returned unchanged, malformed or not.
func ClockToken(s LiveStatus) (string, bool) {
	if !s.IsClock() {
		return "", false
	}
	return string(s), true
}

// LiveProgress maps the clock to a 0-100 progress value over a 90 minute match.
// Only the digits count ("90+3'" reads as 903 and caps at 100); no digits yields 50.
func LiveProgress(s LiveStatus) float64 {
	var digits strings.Builder
	for _, r := range string(s) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 50
	}
	minute, err := strconv.Atoi(digits.String())
	if err != nil {
		return 100
	}
	return math.Min(float64(minute)*100/90, 100)
}

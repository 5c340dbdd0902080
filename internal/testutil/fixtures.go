package testutil

import (
	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
)

// SampleMatch returns a minimal match fixture with the provided id, raw status and kickoff.
func SampleMatch(id string, statusType matches.StatusType, live matches.LiveStatus, ts int64) matches.Match {
	return matches.Match{
		ID:          id,
		Name:        "Home - Away",
		Competition: "Test League",
		Timestamp:   ts,
		Status:      matches.Status{Code: 1, Type: statusType},
		HomeTeam:    matches.Team{ID: 1, Name: "Home", Slug: "home"},
		AwayTeam:    matches.Team{ID: 2, Name: "Away", Slug: "away"},
		LiveStatus:  live,
	}
}

// ScenarioMatches is the finished/in-progress/upcoming trio used across store and API tests.
func ScenarioMatches() []matches.Match {
	return []matches.Match{
		SampleMatch("finished", matches.StatusFinished, matches.LiveFullTime, 10),
		SampleMatch("live", matches.StatusInProgress, "45'", 5),
		SampleMatch("upcoming", matches.StatusNotStarted, matches.LiveDash, 20),
	}
}

package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/timeutil"
)

// Provider returns a static slate of matches useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchMatches returns one match per display status, timed relative to now.
func (p *Provider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	fixtures := []struct {
		id       string
		home     matches.Team
		away     matches.Team
		offset   time.Duration
		status   matches.Status
		live     matches.LiveStatus
		homeGoal int
		awayGoal int
	}{
		{"fixture-live", team(1, "Arsenal"), team(2, "Chelsea"), -time.Hour, matches.Status{Code: 7, Type: matches.StatusInProgress}, "67'", 2, 1},
		{"fixture-halftime", team(3, "Liverpool"), team(4, "Everton"), -45 * time.Minute, matches.Status{Code: 31, Type: matches.StatusInProgress}, matches.LiveHalfTime, 0, 0},
		{"fixture-finished", team(5, "Leeds"), team(6, "Fulham"), -3 * time.Hour, matches.Status{Code: 100, Type: matches.StatusFinished}, matches.LiveFullTime, 1, 3},
		{"fixture-canceled", team(7, "Brentford"), team(8, "Wolves"), -2 * time.Hour, matches.Status{Code: 70, Type: matches.StatusCanceled}, matches.LiveCanceled, 0, 0},
		{"fixture-upcoming", team(9, "Burnley"), team(10, "Luton"), 2 * time.Hour, matches.Status{Code: 0, Type: matches.StatusNotStarted}, matches.LiveDash, 0, 0},
	}

	out := make([]matches.Match, 0, len(fixtures))
	for i, f := range fixtures {
		kickoff := start.Add(f.offset)
		m := matches.Match{
			ID:            f.id,
			Name:          f.home.Name + " - " + f.away.Name,
			CompetitionID: "fixture-league",
			Competition:   "Fixture League",
			CountryID:     "fx",
			Country:       "Fixtureland",
			Timestamp:     kickoff.Unix(),
			Date:          timeutil.FormatKickoffDate(kickoff.Unix(), time.UTC),
			Time:          timeutil.FormatKickoffTime(kickoff.Unix(), time.UTC),
			Status:        f.status,
			Round:         matches.Round{Round: i + 1},
			HomeTeam:      f.home,
			AwayTeam:      f.away,
			LiveStatus:    f.live,
		}
		if f.status.Type != matches.StatusNotStarted {
			m.HomeScore = matches.Score{Current: matches.IntPtr(f.homeGoal)}
			m.AwayScore = matches.Score{Current: matches.IntPtr(f.awayGoal)}
		}
		out = append(out, m)
	}
	return out, nil
}

func team(id int, name string) matches.Team {
	return matches.Team{ID: id, Name: name, Slug: strings.ToLower(name), Gender: "M", SubTeams: []matches.SubTeam{}}
}

package matches

func sampleMatch(id string, statusType StatusType, live LiveStatus, ts int64) Match {
	return Match{
		ID:          id,
		Name:        "Team A - Team B",
		Competition: "Test League",
		Country:     "Test Country",
		Timestamp:   ts,
		Status:      Status{Code: 100, Type: statusType},
		HomeTeam:    Team{ID: 1, Name: "Team A", Slug: "team-a", Gender: "M"},
		AwayTeam:    Team{ID: 2, Name: "Team B", Slug: "team-b", Gender: "M"},
		LiveStatus:  live,
	}
}

func ids(ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

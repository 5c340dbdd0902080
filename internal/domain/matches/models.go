package matches

// StatusType is the upstream lifecycle classification of a match.
type StatusType string

const (
	StatusNotStarted StatusType = "notstarted"
	StatusInProgress StatusType = "inprogress"
	StatusFinished   StatusType = "finished"
	StatusCanceled   StatusType = "canceled"
)

// Status is the raw status record supplied by the feed.
type Status struct {
	Code int        `json:"code"`
	Type StatusType `json:"type"`
}

// SubTeam is a nested squad entry on a team.
type SubTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Team describes one side of a match.
type Team struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Gender   string    `json:"gender"`
	SubTeams []SubTeam `json:"subTeams"`
}

// Score holds per-period goals; any field may be absent upstream.
type Score struct {
	Current    *int `json:"current,omitempty"`
	Period1    *int `json:"period1,omitempty"`
	NormalTime *int `json:"normaltime,omitempty"`
}

// Round identifies the competition round.
type Round struct {
	Round int `json:"round"`
}

// Match is the canonical match shape read from the feed. It is treated as immutable.
type Match struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CompetitionID string     `json:"competitionId"`
	Competition   string     `json:"competition"`
	CountryID     string     `json:"countryId"`
	Country       string     `json:"country"`
	Timestamp     int64      `json:"timestamp"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Status        Status     `json:"status"`
	Round         Round      `json:"round"`
	HomeTeam      Team       `json:"homeTeam"`
	AwayTeam      Team       `json:"awayTeam"`
	HomeScore     Score      `json:"homeScore"`
	AwayScore     Score      `json:"awayScore"`
	LiveStatus    LiveStatus `json:"liveStatus"`
}

// DisplayStatus is the UI-facing classification derived from a match.
type DisplayStatus string

const (
	DisplayLive     DisplayStatus = "live"
	DisplayHalftime DisplayStatus = "halftime"
	DisplayFinished DisplayStatus = "finished"
	DisplayCanceled DisplayStatus = "canceled"
	DisplayPrematch DisplayStatus = "prematch"
)

// IntPtr is a convenience for building optional score fields.
func IntPtr(v int) *int {
	return &v
}

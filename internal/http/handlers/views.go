package handlers

import (
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/store"
	"github.com/preston-bernstein/live-scores-service/internal/timeutil"
)

type scoreView struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// matchView is a feed match plus everything a card needs to render it.
type matchView struct {
	matches.Match
	DisplayStatus matches.DisplayStatus `json:"displayStatus"`
	IsLive        bool                  `json:"isLive"`
	Clock         string                `json:"clock,omitempty"`
	Progress      *float64              `json:"progress,omitempty"`
	Badge         string                `json:"badge"`
	KickoffDate   string                `json:"kickoffDate"`
	KickoffTime   string                `json:"kickoffTime"`
	Score         scoreView             `json:"score"`
}

type matchesResponse struct {
	ActiveFilter matches.FilterType   `json:"activeFilter"`
	FilterCounts matches.FilterCounts `json:"filterCounts"`
	IsLoading    bool                 `json:"isLoading"`
	Error        *string              `json:"error"`
	LastUpdated  *time.Time           `json:"lastUpdated,omitempty"`
	Matches      []matchView          `json:"matches"`
}

type filterView struct {
	ID         matches.FilterType  `json:"id"`
	Label      string              `json:"label"`
	StatusType *matches.StatusType `json:"statusType"`
	Count      int                 `json:"count"`
	Active     bool                `json:"active"`
}

func newMatchView(m matches.Match, loc *time.Location) matchView {
	clock, _ := matches.ClockToken(m.LiveStatus)
	home, away := matches.DisplayScore(m)
	var progress *float64
	if matches.IsLive(m) {
		p := matches.LiveProgress(m.LiveStatus)
		progress = &p
	}
	return matchView{
		Match:         m,
		DisplayStatus: matches.Classify(m),
		IsLive:        matches.IsLive(m),
		Clock:         clock,
		Progress:      progress,
		Badge:         matches.BadgeText(m, loc),
		KickoffDate:   timeutil.FormatKickoffDate(m.Timestamp, loc),
		KickoffTime:   timeutil.FormatKickoffTime(m.Timestamp, loc),
		Score:         scoreView{Home: home, Away: away},
	}
}

func newMatchesResponse(st store.State, loc *time.Location) matchesResponse {
	views := make([]matchView, 0, len(st.FilteredMatches))
	for _, m := range st.FilteredMatches {
		views = append(views, newMatchView(m, loc))
	}
	resp := matchesResponse{
		ActiveFilter: st.ActiveFilter,
		FilterCounts: st.FilterCounts,
		IsLoading:    st.IsLoading,
		Matches:      views,
	}
	if st.Error != "" {
		msg := st.Error
		resp.Error = &msg
	}
	if !st.LastUpdated.IsZero() {
		updated := st.LastUpdated
		resp.LastUpdated = &updated
	}
	return resp
}

func newFilterViews(st store.State) []filterView {
	opts := matches.FilterOptions()
	out := make([]filterView, 0, len(opts))
	for _, opt := range opts {
		out = append(out, filterView{
			ID:         opt.ID,
			Label:      opt.Label,
			StatusType: opt.StatusType,
			Count:      st.FilterCounts.Get(opt.ID),
			Active:     opt.ID == st.ActiveFilter,
		})
	}
	return out
}

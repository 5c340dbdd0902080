package matches

import (
	"fmt"
	"sort"
	"strings"
)

// FilterType selects one of the user-facing match buckets.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterResult   FilterType = "result"
	FilterLive     FilterType = "live"
	FilterUpcoming FilterType = "upcoming"
)

// FilterOption describes a filter bucket and the raw status it selects.
type FilterOption struct {
	ID         FilterType  `json:"id"`
	Label      string      `json:"label"`
	StatusType *StatusType `json:"statusType"`
}

// FilterCounts holds per-bucket totals over the full, unfiltered collection.
type FilterCounts struct {
	All      int `json:"all"`
	Result   int `json:"result"`
	Live     int `json:"live"`
	Upcoming int `json:"upcoming"`
}

// FilterOptions returns the four filter buckets in display order.
func FilterOptions() []FilterOption {
	finished, inProgress, notStarted := StatusFinished, StatusInProgress, StatusNotStarted
	return []FilterOption{
		{ID: FilterAll, Label: "All"},
		{ID: FilterResult, Label: "Result", StatusType: &finished},
		{ID: FilterLive, Label: "Live", StatusType: &inProgress},
		{ID: FilterUpcoming, Label: "Upcoming", StatusType: &notStarted},
	}
}

// statusTypeToFilter routes raw types to count buckets. Canceled matches count as results.
var statusTypeToFilter = map[StatusType]FilterType{
	StatusFinished:   FilterResult,
	StatusCanceled:   FilterResult,
	StatusInProgress: FilterLive,
	StatusNotStarted: FilterUpcoming,
}

// filterToStatusType is the forward mapping; result names only finished.
var filterToStatusType = map[FilterType]StatusType{
	FilterResult:   StatusFinished,
	FilterLive:     StatusInProgress,
	FilterUpcoming: StatusNotStarted,
}

// ParseFilterType validates a user-supplied filter name (case-insensitive).
func ParseFilterType(raw string) (FilterType, error) {
	ft := FilterType(strings.ToLower(strings.TrimSpace(raw)))
	switch ft {
	case FilterAll, FilterResult, FilterLive, FilterUpcoming:
		return ft, nil
	default:
		return "", fmt.Errorf("unknown filter %q", raw)
	}
}

// Get returns the count for a single bucket.
func (c FilterCounts) Get(ft FilterType) int {
	switch ft {
	case FilterAll:
		return c.All
	case FilterResult:
		return c.Result
	case FilterLive:
		return c.Live
	case FilterUpcoming:
		return c.Upcoming
	default:
		return 0
	}
}

func (c *FilterCounts) increment(ft FilterType) {
	switch ft {
	case FilterResult:
		c.Result++
	case FilterLive:
		c.Live++
	case FilterUpcoming:
		c.Upcoming++
	}
}

// CountByFilter tallies matches into filter buckets in a single pass.
func CountByFilter(ms []Match) FilterCounts {
	var counts FilterCounts
	for _, m := range ms {
		counts.All++
		if ft, ok := statusTypeToFilter[m.Status.Type]; ok {
			counts.increment(ft)
		}
	}
	return counts
}

// Filter returns the matches selected by ft, preserving input order. The input is not modified.
func Filter(ms []Match, ft FilterType) []Match {
	if ft == FilterAll {
		return ms
	}

	// Results include canceled matches even though the forward mapping only names finished.
	if ft == FilterResult {
		return selectMatches(ms, func(m Match) bool {
			return m.Status.Type == StatusFinished || m.Status.Type == StatusCanceled
		})
	}

	target, ok := filterToStatusType[ft]
	if !ok {
		return []Match{}
	}
	return selectMatches(ms, func(m Match) bool {
		return m.Status.Type == target
	})
}

// Sort returns a copy ordered live-first, then by ascending kickoff timestamp. Equal keys keep input order.
func Sort(ms []Match) []Match {
	sorted := make([]Match, len(ms))
	copy(sorted, ms)
	sort.SliceStable(sorted, func(i, j int) bool {
		iLive := sorted[i].Status.Type == StatusInProgress
		jLive := sorted[j].Status.Type == StatusInProgress
		if iLive != jLive {
			return iLive
		}
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted
}

// FindByID returns the match with the given id, if present.
func FindByID(ms []Match, id string) (Match, bool) {
	for _, m := range ms {
		if m.ID == id {
			return m, true
		}
	}
	return Match{}, false
}

func selectMatches(ms []Match, keep func(Match) bool) []Match {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

package matches

import (
	"reflect"
	"testing"
)

func mixedMatches() []Match {
	return []Match{
		sampleMatch("finished", StatusFinished, LiveFullTime, 10),
		sampleMatch("live", StatusInProgress, "45'", 5),
		sampleMatch("upcoming", StatusNotStarted, LiveDash, 20),
		sampleMatch("canceled", StatusCanceled, LiveCanceled, 15),
		sampleMatch("halftime", StatusInProgress, LiveHalfTime, 1),
	}
}

func TestCountByFilterEmpty(t *testing.T) {
	if got := CountByFilter(nil); got != (FilterCounts{}) {
		t.Fatalf("expected zero counts, got %+v", got)
	}
}

func TestCountByFilterBuckets(t *testing.T) {
	got := CountByFilter(mixedMatches())
	want := FilterCounts{All: 5, Result: 2, Live: 2, Upcoming: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCountByFilterUnknownTypeOnlyCountsAll(t *testing.T) {
	ms := []Match{sampleMatch("odd", StatusType("postponed"), LiveDash, 0)}
	got := CountByFilter(ms)
	if got.All != 1 || got.Result+got.Live+got.Upcoming != 0 {
		t.Fatalf("expected only all incremented, got %+v", got)
	}
}

func TestFilterAllReturnsInput(t *testing.T) {
	ms := mixedMatches()
	got := Filter(ms, FilterAll)
	if !reflect.DeepEqual(ids(got), ids(ms)) {
		t.Fatalf("expected all matches in order, got %v", ids(got))
	}
}

func TestFilterResultIncludesCanceled(t *testing.T) {
	got := Filter(mixedMatches(), FilterResult)
	want := []string{"finished", "canceled"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterLiveAndUpcoming(t *testing.T) {
	if got := ids(Filter(mixedMatches(), FilterLive)); !reflect.DeepEqual(got, []string{"live", "halftime"}) {
		t.Fatalf("unexpected live selection %v", got)
	}
	if got := ids(Filter(mixedMatches(), FilterUpcoming)); !reflect.DeepEqual(got, []string{"upcoming"}) {
		t.Fatalf("unexpected upcoming selection %v", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	ms := mixedMatches()
	before := ids(ms)
	_ = Filter(ms, FilterResult)
	_ = Filter(ms, FilterLive)
	if !reflect.DeepEqual(ids(ms), before) {
		t.Fatalf("input mutated: %v", ids(ms))
	}
}

func TestSortLiveFirstThenTimestamp(t *testing.T) {
	got := ids(Sort(mixedMatches()))
	want := []string{"halftime", "live", "finished", "canceled", "upcoming"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortIsStableAndNonMutating(t *testing.T) {
	ms := []Match{
		sampleMatch("a", StatusNotStarted, LiveDash, 100),
		sampleMatch("b", StatusFinished, LiveFullTime, 100),
		sampleMatch("c", StatusInProgress, "10'", 100),
		sampleMatch("d", StatusNotStarted, LiveDash, 100),
		sampleMatch("e", StatusInProgress, "80'", 100),
	}
	before := ids(ms)

	got := ids(Sort(ms))
	want := []string{"c", "e", "a", "b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable order %v, got %v", want, got)
	}
	if !reflect.DeepEqual(ids(ms), before) {
		t.Fatalf("sort mutated input: %v", ids(ms))
	}
}

func TestParseFilterType(t *testing.T) {
	for _, raw := range []string{"all", "Result", " live ", "UPCOMING"} {
		if _, err := ParseFilterType(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}
	if _, err := ParseFilterType("finished"); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestFilterOptionsShape(t *testing.T) {
	opts := FilterOptions()
	if len(opts) != 4 {
		t.Fatalf("expected 4 filter options, got %d", len(opts))
	}
	if opts[0].ID != FilterAll || opts[0].StatusType != nil {
		t.Fatalf("expected all option without status type, got %+v", opts[0])
	}
	if opts[1].ID != FilterResult || opts[1].StatusType == nil || *opts[1].StatusType != StatusFinished {
		t.Fatalf("expected result option to name finished, got %+v", opts[1])
	}
	labels := []string{opts[0].Label, opts[1].Label, opts[2].Label, opts[3].Label}
	if !reflect.DeepEqual(labels, []string{"All", "Result", "Live", "Upcoming"}) {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestFilterCountsGet(t *testing.T) {
	c := FilterCounts{All: 4, Result: 1, Live: 2, Upcoming: 1}
	if c.Get(FilterAll) != 4 || c.Get(FilterResult) != 1 || c.Get(FilterLive) != 2 || c.Get(FilterUpcoming) != 1 {
		t.Fatalf("unexpected bucket lookups for %+v", c)
	}
}

func TestFindByID(t *testing.T) {
	if m, ok := FindByID(mixedMatches(), "live"); !ok || m.ID != "live" {
		t.Fatalf("expected to find live match")
	}
	if _, ok := FindByID(mixedMatches(), "missing"); ok {
		t.Fatal("expected missing id to return false")
	}
}

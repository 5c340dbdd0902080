package matches

// LiveStatus is the free-text live indicator: either a sentinel token or a match clock.
type LiveStatus string

const (
	LiveFullTime  LiveStatus = "FT"
	LiveHalfTime  LiveStatus = "HT"
	LiveDash      LiveStatus = "-"
	LiveCancelled LiveStatus = "Cancelled"
	LiveCanceled  LiveStatus = "Canceled"
)

// Sentinel tags the closed set of non-clock live indicators.
type Sentinel int

const (
	// SentinelNone means the indicator is an opaque clock token.
	SentinelNone Sentinel = iota
	SentinelFullTime
	SentinelHalfTime
	SentinelDash
	SentinelCanceled
)

// Sentinel reports which sentinel the indicator holds. Both cancel spellings map to SentinelCanceled.
func (s LiveStatus) Sentinel() Sentinel {
	switch s {
	case LiveFullTime:
		return SentinelFullTime
	case LiveHalfTime:
		return SentinelHalfTime
	case LiveDash:
		return SentinelDash
	case LiveCancelled, LiveCanceled:
		return SentinelCanceled
	default:
		return SentinelNone
	}
}

// IsClock reports whether the indicator is not one of the sentinel tokens.
func (s LiveStatus) IsClock() bool {
	return s.Sentinel() == SentinelNone
}

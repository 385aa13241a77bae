// Package tui is the interactive Bubble Tea interface.
package tui

type state int

const (
	loadingState state = iota
	errorState
	sportsState
	matchesState
	sourcesState
	streamsState
)

func (s state) String() string {
	switch s {
	case loadingState:
		return "loading"
	case errorState:
		return "error"
	case sportsState:
		return "sports"
	case matchesState:
		return "matches"
	case sourcesState:
		return "sources"
	case streamsState:
		return "streams"
	default:
		return "unknown"
	}
}

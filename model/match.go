package model

import (
	"fmt"
	"time"
)

// TeamRef is one side of a fixture.
type TeamRef struct {
	Name  string `json:"name"`
	Badge string `json:"badge"`
}

// Teams is the home and away side of a match. Either may be missing.
type Teams struct {
	Home *TeamRef `json:"home,omitempty"`
	Away *TeamRef `json:"away,omitempty"`
}

// SourceRef addresses one feed of a match. Source names the provider, ID is
// the provider-specific identifier of the match.
type SourceRef struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

func (r SourceRef) String() string {
	return r.Source + "/" + r.ID
}

// Match is a scheduled or live event.
// ID is only unique within the listing it was decoded from.
type Match struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category string      `json:"category"`
	Date     int64       `json:"date" jsonschema:"description=Start time in milliseconds since the Unix epoch"`
	Poster   string      `json:"poster,omitempty"`
	Popular  bool        `json:"popular"`
	Teams    *Teams      `json:"teams,omitempty"`
	Sources  []SourceRef `json:"sources"`
}

// Time converts Date to a time.Time. A zero Date yields the zero time.
func (m Match) Time() time.Time {
	if m.Date == 0 {
		return time.Time{}
	}
	return time.UnixMilli(m.Date)
}

// HasTeams reports whether both sides of the fixture are known.
func (m Match) HasTeams() bool {
	return m.Teams != nil && m.Teams.Home != nil && m.Teams.Away != nil
}

// Versus renders "Home vs Away", falling back to the title.
func (m Match) Versus() string {
	if !m.HasTeams() || m.Teams.Home.Name == "" || m.Teams.Away.Name == "" {
		return m.Title
	}
	return fmt.Sprintf("%s vs %s", m.Teams.Home.Name, m.Teams.Away.Name)
}

func (m Match) String() string {
	return m.Title
}

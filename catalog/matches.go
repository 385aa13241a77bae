package catalog

import (
	"context"

	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
)

// Matches lists the matches of a category.
type Matches struct {
	upstream Upstream
}

// NewMatches creates a match catalog reading from upstream.
func NewMatches(upstream Upstream) *Matches {
	return &Matches{upstream: upstream}
}

// List performs one read of the category and returns the rows exactly as
// decoded. Unknown categories and failures yield an empty slice.
func (m *Matches) List(ctx context.Context, category Category) []model.Match {
	if !category.Valid() {
		log.WithFields(log.Fields{"category": category}).Warn("refusing unknown category")
		return []model.Match{}
	}

	matches, err := m.upstream.Matches(ctx, category.Path())
	if err != nil {
		log.WithFields(log.Fields{"category": category, "err": err}).Warn("listing matches failed")
		return []model.Match{}
	}

	if matches == nil {
		return []model.Match{}
	}

	return matches
}

package catalog

import (
	"context"

	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Sports lists the sports known to the upstream.
type Sports struct {
	upstream Upstream
}

// NewSports creates a sport catalog reading from upstream.
func NewSports(upstream Upstream) *Sports {
	return &Sports{upstream: upstream}
}

// List performs one read. Failures yield an empty slice.
func (s *Sports) List(ctx context.Context) []model.Sport {
	sports, err := s.upstream.Sports(ctx)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("listing sports failed")
		return []model.Sport{}
	}

	if sports == nil {
		return []model.Sport{}
	}

	return sports
}

// ByID returns the first sport with the given id.
func (s *Sports) ByID(ctx context.Context, id string) mo.Option[model.Sport] {
	sport, ok := lo.Find(s.List(ctx), func(sport model.Sport) bool {
		return sport.ID == id
	})
	if !ok {
		return mo.None[model.Sport]()
	}
	return mo.Some(sport)
}

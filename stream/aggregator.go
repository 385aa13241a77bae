// Package stream resolves the playable variants of match feeds.
package stream

import (
	"context"
	"sync"

	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/samber/lo"
)

// Upstream is the part of api.Client the aggregator reads from.
type Upstream interface {
	Streams(ctx context.Context, source, id string) ([]model.Stream, error)
}

// Aggregator turns match feeds into playable streams.
type Aggregator struct {
	upstream Upstream
}

// NewAggregator creates an aggregator reading from upstream.
func NewAggregator(upstream Upstream) *Aggregator {
	return &Aggregator{upstream: upstream}
}

// ResolveOne reads the streams of one feed and tags each with the requested
// pair as Origin. A missing upstream source is filled in from the request.
// Failures yield an empty slice.
func (a *Aggregator) ResolveOne(ctx context.Context, source, id string) []model.Stream {
	origin := model.SourceRef{Source: source, ID: id}

	streams, err := a.upstream.Streams(ctx, source, id)
	if err != nil {
		log.WithFields(log.Fields{"origin": origin.String(), "err": err}).Warn("resolving streams failed")
		return []model.Stream{}
	}

	resolved := make([]model.Stream, 0, len(streams))
	for _, s := range streams {
		s.Origin = origin
		switch {
		case s.Source == "":
			s.Source = source
		case s.Source != source:
			log.WithFields(log.Fields{
				"origin":   origin.String(),
				"reported": s.Source,
				"stream":   s.ID,
			}).Warn("upstream reported a different source")
		}
		resolved = append(resolved, s)
	}

	return resolved
}

// ResolveMany resolves every ref concurrently and concatenates the results in
// the order of refs. A failing ref contributes nothing.
func (a *Aggregator) ResolveMany(ctx context.Context, refs []model.SourceRef) []model.Stream {
	if len(refs) == 0 {
		return []model.Stream{}
	}

	slots := make([][]model.Stream, len(refs))

	var wg sync.WaitGroup
	wg.Add(len(refs))
	for i, ref := range refs {
		go func(i int, ref model.SourceRef) {
			defer wg.Done()
			slots[i] = a.ResolveOne(ctx, ref.Source, ref.ID)
		}(i, ref)
	}
	wg.Wait()

	return lo.Flatten(slots)
}

// Resolve implements watch.Resolver.
func (a *Aggregator) Resolve(ctx context.Context, refs []model.SourceRef) []model.Stream {
	return a.ResolveMany(ctx, refs)
}

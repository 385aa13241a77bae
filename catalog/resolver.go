package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abouramd/live-stream/filesystem"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// ErrMatchNotFound is returned by Resolver.Find when no row carries the id.
var ErrMatchNotFound = errors.New("match not found")

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Category is the snapshot scanned for ids. Defaults to AllToday.
	Category Category

	// IndexTTL enables an id index kept for at most this long.
	// Zero disables it and every lookup re-fetches the snapshot.
	IndexTTL time.Duration
}

// Resolver looks matches up by id. The upstream has no such endpoint, so
// each lookup scans a full listing.
type Resolver struct {
	matches  *Matches
	category Category

	mu    sync.Mutex
	index *gache.Cache[map[string]model.Match]
}

// NewResolver creates a resolver scanning the options category of matches.
// An invalid category falls back to AllToday.
func NewResolver(matches *Matches, options ResolverOptions) *Resolver {
	category := options.Category
	if !category.Valid() {
		category = AllToday
	}

	r := &Resolver{
		matches:  matches,
		category: category,
	}

	if options.IndexTTL > 0 {
		r.index = gache.New[map[string]model.Match](&gache.Options{
			Path:       "/resolver/index.json",
			Lifetime:   options.IndexTTL,
			FileSystem: &filesystem.GacheFs{Fs: afero.NewMemMapFs()},
		})
	}

	return r
}

// Category returns the listing the resolver scans.
func (r *Resolver) Category() Category {
	return r.category
}

// FindByID returns the first row of the snapshot whose id equals id.
// Absence is a normal outcome.
func (r *Resolver) FindByID(ctx context.Context, id string) mo.Option[model.Match] {
	if r.index != nil {
		return r.findIndexed(ctx, id)
	}

	return scan(r.matches.List(ctx, r.category), id)
}

// Find is FindByID for callers that prefer an error, which is ErrMatchNotFound.
func (r *Resolver) Find(ctx context.Context, id string) (model.Match, error) {
	match, ok := r.FindByID(ctx, id).Get()
	if !ok {
		return model.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return match, nil
}

func (r *Resolver) findIndexed(ctx context.Context, id string) mo.Option[model.Match] {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, expired, err := r.index.Get()
	if err == nil && !expired && index != nil {
		return lookup(index, id)
	}

	snapshot := r.matches.List(ctx, r.category)
	index = buildIndex(snapshot)

	// an empty snapshot is usually a failed read, keep retrying it
	if len(snapshot) > 0 {
		if err := r.index.Set(index); err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("storing match index failed")
		}
	}

	return lookup(index, id)
}

func scan(snapshot []model.Match, id string) mo.Option[model.Match] {
	for _, match := range snapshot {
		if match.ID == id {
			return mo.Some(match)
		}
	}
	return mo.None[model.Match]()
}

// buildIndex keeps the first occurrence of each id.
func buildIndex(snapshot []model.Match) map[string]model.Match {
	index := make(map[string]model.Match, len(snapshot))
	for _, match := range snapshot {
		if _, seen := index[match.ID]; !seen {
			index[match.ID] = match
		}
	}
	return index
}

func lookup(index map[string]model.Match, id string) mo.Option[model.Match] {
	match, ok := index[id]
	if !ok {
		return mo.None[model.Match]()
	}
	return mo.Some(match)
}

// Package catalog reads sports and match listings and resolves matches by id.
//
// Every read soft-fails: upstream errors are logged and turn into empty or
// absent results so browsing never stops on a flaky upstream.
package catalog

import (
	"context"

	"github.com/abouramd/live-stream/model"
)

// Upstream is the part of api.Client the catalogs read from.
type Upstream interface {
	Sports(ctx context.Context) ([]model.Sport, error)
	Matches(ctx context.Context, category string) ([]model.Match, error)
}

// Package app wires the upstream client, catalogs and stream aggregator from configuration.
package app

import (
	"context"
	"time"

	"github.com/abouramd/live-stream/api"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/network"
	"github.com/abouramd/live-stream/stream"
	"github.com/abouramd/live-stream/watch"
	"github.com/spf13/viper"
)

// App bundles the catalogs and the stream aggregator over one upstream client.
type App struct {
	Client     *api.Client
	Sports     *catalog.Sports
	Matches    *catalog.Matches
	Resolver   *catalog.Resolver
	Aggregator *stream.Aggregator

	watchTimeout time.Duration
}

// New builds an App from viper settings.
func New() *App {
	client := api.New(api.Options{
		BaseURL:    viper.GetString(key.APIBaseURL),
		HTTPClient: network.NewClient(),
		UserAgent:  viper.GetString(key.APIUserAgent),
	})

	return NewWithClient(client)
}

// NewWithClient builds an App around an existing client. Resolver and watch
// settings still come from viper.
func NewWithClient(client *api.Client) *App {
	resolverCategory, err := catalog.ParseCategory(viper.GetString(key.ResolverCategory))
	if err != nil {
		log.Warnf("%v, falling back to %s", err, catalog.AllToday)
		resolverCategory = catalog.AllToday
	}

	matches := catalog.NewMatches(client)

	return &App{
		Client:  client,
		Sports:  catalog.NewSports(client),
		Matches: matches,
		Resolver: catalog.NewResolver(matches, catalog.ResolverOptions{
			Category: resolverCategory,
			IndexTTL: time.Duration(viper.GetInt(key.ResolverIndexTTL)) * time.Second,
		}),
		Aggregator:   stream.NewAggregator(client),
		watchTimeout: time.Duration(viper.GetInt(key.WatchTimeout)) * time.Second,
	}
}

// WatchTimeout bounds every stream lookup.
func (a *App) WatchTimeout() time.Duration {
	return a.watchTimeout
}

// NewSession starts a viewing session bounded by WatchTimeout.
func (a *App) NewSession(ctx context.Context) *watch.Session {
	return watch.NewSession(ctx, a.Aggregator, a.watchTimeout)
}

// DefaultCategory returns catalog.default_category, or Live when it is invalid.
func DefaultCategory() catalog.Category {
	category, err := catalog.ParseCategory(viper.GetString(key.CatalogDefaultCategory))
	if err != nil {
		log.Warnf("%v, falling back to %s", err, catalog.Live)
		return catalog.Live
	}
	return category
}

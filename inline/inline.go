// Package inline is the non-interactive mode: every command prints one result and exits.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	ErrNoMatchChosen = errors.New("no match chosen")
	ErrNoSource      = errors.New("match has no such source")
	ErrNoStream      = errors.New("no stream matched the picker")
)

func prepare(options *Options) {
	if options.Out == nil {
		options.Out = os.Stdout
	}
}

// Sports prints the sports listing.
func Sports(ctx context.Context, a *app.App, options *Options) error {
	prepare(options)
	sports := a.Sports.List(ctx)

	if options.Json {
		return writeJson(options.Out, &Output{Query: "sports", Sports: sports})
	}

	w := tabwriter.NewWriter(options.Out, 0, 4, 2, ' ', 0)
	for _, s := range sports {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", s.ID, s.Name)
	}
	return w.Flush()
}

// Matches prints the listing of options.Category.
func Matches(ctx context.Context, a *app.App, options *Options) error {
	prepare(options)
	if !options.Category.Valid() {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, options.Category)
	}

	matches := a.Matches.List(ctx, options.Category)

	if options.Json {
		return writeJson(options.Out, &Output{Query: "matches/" + options.Category.String(), Matches: matches})
	}

	w := tabwriter.NewWriter(options.Out, 0, 4, 2, ' ', 0)
	for _, m := range matches {
		writeMatchRow(w, m)
	}
	return w.Flush()
}

// Match prints the chosen match and its feeds.
func Match(ctx context.Context, a *app.App, options *Options) error {
	prepare(options)
	match, err := chooseMatch(ctx, a, options)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.Out, &Output{Query: "match/" + match.ID, Match: &match})
	}

	w := tabwriter.NewWriter(options.Out, 0, 4, 2, ' ', 0)
	writeMatchRow(w, match)
	for _, ref := range match.Sources {
		_, _ = fmt.Fprintf(w, "\t%s\t%s\n", ref.Source, ref.ID)
	}
	return w.Flush()
}

// Streams resolves the feeds of the chosen match and prints their streams,
// or only the picked one when a stream picker is set.
func Streams(ctx context.Context, a *app.App, options *Options) error {
	prepare(options)
	match, err := chooseMatch(ctx, a, options)
	if err != nil {
		return err
	}

	refs := match.Sources
	if options.Source != "" {
		refs = lo.Filter(refs, func(ref model.SourceRef, _ int) bool {
			return strings.EqualFold(ref.Source, options.Source)
		})
		if len(refs) == 0 {
			return fmt.Errorf("%w: %s", ErrNoSource, options.Source)
		}
	}

	session := a.NewSession(ctx)
	defer session.Close()

	current, err := await(ctx, session, session.SelectSources(refs))
	if err != nil {
		return err
	}

	output := &Output{Query: "streams/" + match.ID, Match: &match, Streams: current.Streams}

	if picker, ok := options.StreamPicker.Get(); ok {
		picked, ok := picker(current.Streams).Get()
		if !ok || !session.SelectStream(picked) {
			return ErrNoStream
		}
		output.Picked = &picked

		if options.Open && options.Opener != nil {
			if err := options.Opener(picked.EmbedURL); err != nil {
				return err
			}
		}
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	if output.Picked != nil {
		_, err = fmt.Fprintln(options.Out, output.Picked.EmbedURL)
		return err
	}

	w := tabwriter.NewWriter(options.Out, 0, 4, 2, ' ', 0)
	for _, s := range current.Streams {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Origin, s.Language, s.Quality(), s.EmbedURL)
	}
	return w.Flush()
}

func chooseMatch(ctx context.Context, a *app.App, options *Options) (model.Match, error) {
	if options.MatchID != "" {
		return a.Resolver.Find(ctx, options.MatchID)
	}

	picker, ok := options.MatchPicker.Get()
	if !ok {
		return model.Match{}, ErrNoMatchChosen
	}

	category := options.Category
	if !category.Valid() {
		category = a.Resolver.Category()
	}

	match, ok := picker(a.Matches.List(ctx, category)).Get()
	if !ok {
		return model.Match{}, fmt.Errorf("%w in %s", ErrNoMatchChosen, category)
	}
	return match, nil
}

// await blocks until the selection identified by token settles.
func await(ctx context.Context, session *watch.Session, token watch.Token) (watch.State, error) {
	settled := func(s watch.State) mo.Option[watch.State] {
		if s.Token != token || s.Kind == watch.Loading {
			return mo.None[watch.State]()
		}
		return mo.Some(s)
	}

	result := settled(session.State())
	for result.IsAbsent() {
		select {
		case <-ctx.Done():
			return watch.State{}, ctx.Err()
		case s, ok := <-session.Updates():
			if !ok {
				return watch.State{}, errors.New("session closed")
			}
			result = settled(s)
		}
	}

	current := result.MustGet()
	if current.Kind == watch.Failed {
		log.WithFields(log.Fields{"token": token, "err": current.Err}).Warn("stream lookup failed")
		return current, current.Err
	}
	return current, nil
}

func writeMatchRow(w *tabwriter.Writer, m model.Match) {
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", m.ID, m.Title, m.Category, len(m.Sources))
}

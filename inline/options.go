package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker chooses one element of a listing.
type Picker[T any] func([]T) mo.Option[T]

// Options configures a single inline run.
type Options struct {
	Out  io.Writer
	Json bool

	// Category is the listing for matches and for picking a match.
	Category catalog.Category

	// MatchID names the match directly. When empty, MatchPicker chooses one from Category.
	MatchID     string
	MatchPicker mo.Option[Picker[model.Match]]

	// Source restricts the lookup to the feeds of one source.
	Source string

	StreamPicker mo.Option[Picker[model.Stream]]

	// Open launches the picked stream's embed URL with Opener.
	Open   bool
	Opener func(url string) error
}

// positional handles the pickers shared by every listing: first, last and index:N.
func positional[T any](kind, value string) (Picker[T], bool, error) {
	switch kind {
	case "first":
		return func(items []T) mo.Option[T] {
			if len(items) == 0 {
				return mo.None[T]()
			}
			return mo.Some(items[0])
		}, true, nil
	case "last":
		return func(items []T) mo.Option[T] {
			if len(items) == 0 {
				return mo.None[T]()
			}
			return mo.Some(items[len(items)-1])
		}, true, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, true, fmt.Errorf("invalid index: %s", value)
		}
		return func(items []T) mo.Option[T] {
			if len(items) == 0 {
				return mo.None[T]()
			}
			return mo.Some(items[util.Min(int(idx), len(items)-1)])
		}, true, nil
	}

	return nil, false, nil
}

func splitPicker(description string) (kind, value string) {
	kind, value, _ = strings.Cut(strings.TrimSpace(description), ":")
	return strings.ToLower(kind), strings.TrimSpace(value)
}

// ParseMatchPicker accepts first, last, index:N and title:<substring>.
func ParseMatchPicker(description string) (Picker[model.Match], error) {
	kind, value := splitPicker(description)

	if picker, ok, err := positional[model.Match](kind, value); ok {
		return picker, err
	}

	if kind == "title" && value != "" {
		needle := strings.ToLower(value)
		return func(matches []model.Match) mo.Option[model.Match] {
			match, ok := lo.Find(matches, func(m model.Match) bool {
				return strings.Contains(strings.ToLower(m.Title), needle)
			})
			return lo.Ternary(ok, mo.Some(match), mo.None[model.Match]())
		}, nil
	}

	return nil, fmt.Errorf("unknown match picker: %s", description)
}

// ParseStreamPicker accepts first, last, index:N, hd and lang:<language>.
// hd prefers the first HD stream and falls back to the first one.
func ParseStreamPicker(description string) (Picker[model.Stream], error) {
	kind, value := splitPicker(description)

	if picker, ok, err := positional[model.Stream](kind, value); ok {
		return picker, err
	}

	switch kind {
	case "hd":
		return func(streams []model.Stream) mo.Option[model.Stream] {
			if len(streams) == 0 {
				return mo.None[model.Stream]()
			}
			hd, ok := lo.Find(streams, func(s model.Stream) bool { return s.HD })
			return mo.Some(lo.Ternary(ok, hd, streams[0]))
		}, nil
	case "lang":
		if value == "" {
			break
		}
		return func(streams []model.Stream) mo.Option[model.Stream] {
			s, ok := lo.Find(streams, func(s model.Stream) bool {
				return strings.EqualFold(strings.TrimSpace(s.Language), value)
			})
			return lo.Ternary(ok, mo.Some(s), mo.None[model.Stream]())
		}, nil
	}

	return nil, fmt.Errorf("unknown stream picker: %s", description)
}

// Package watch models picking a feed and a stream variant for one viewing session.
package watch

import (
	"errors"

	"github.com/abouramd/live-stream/model"
)

// ErrTimeout is the error of a Failed state reached because a lookup took too long.
var ErrTimeout = errors.New("stream lookup timed out")

// Kind tags the variant of a State.
type Kind int

const (
	Idle Kind = iota
	Loading
	Ready
	Chosen
	Failed
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Chosen:
		return "chosen"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Token identifies one selection. Tokens only grow.
type Token uint64

// State is a snapshot of the machine. Fields outside the current Kind are zero:
// Streams is set in Ready and Chosen, ActiveEmbedURL in Chosen, Err in Failed.
type State struct {
	Kind           Kind
	Token          Token
	Sources        []model.SourceRef
	Streams        []model.Stream
	ActiveEmbedURL string
	Err            error
}

// Active returns the chosen stream, if any.
func (s State) Active() (model.Stream, bool) {
	if s.Kind != Chosen {
		return model.Stream{}, false
	}
	for _, stream := range s.Streams {
		if stream.EmbedURL == s.ActiveEmbedURL {
			return stream, true
		}
	}
	return model.Stream{}, false
}

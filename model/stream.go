package model

import (
	"fmt"
	"strings"
)

// Stream is one playable variant of a feed.
// ID is only unique within a single source lookup, so Origin keeps the
// (source, id) pair that was requested to produce it.
type Stream struct {
	ID       string    `json:"id"`
	StreamNo int       `json:"streamNo"`
	Language string    `json:"language"`
	HD       bool      `json:"hd"`
	EmbedURL string    `json:"embedUrl"`
	Source   string    `json:"source"`
	Origin   SourceRef `json:"origin"`
}

// Quality is "HD" or "SD".
func (s Stream) Quality() string {
	if s.HD {
		return "HD"
	}
	return "SD"
}

func (s Stream) String() string {
	language := strings.TrimSpace(s.Language)
	if language == "" {
		language = "Unknown"
	}
	return fmt.Sprintf("Stream %d · %s · %s", s.StreamNo, language, s.Quality())
}

// Same reports whether two streams came from the same lookup with the same id.
func (s Stream) Same(other Stream) bool {
	return s.ID == other.ID && s.Origin == other.Origin && s.EmbedURL == other.EmbedURL
}

package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/abouramd/live-stream/api"
	"github.com/abouramd/live-stream/model"
)

type fakeUpstream struct {
	mu        sync.Mutex
	sports    []model.Sport
	matches   map[string][]model.Match
	sportsErr error
	calls     []string
}

func (f *fakeUpstream) Sports(context.Context) ([]model.Sport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "sports")
	if f.sportsErr != nil {
		return nil, f.sportsErr
	}
	return f.sports, nil
}

func (f *fakeUpstream) Matches(_ context.Context, category string) ([]model.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "matches/"+category)
	matches, ok := f.matches[category]
	if !ok {
		return nil, &api.TransportError{URL: "/api/matches/" + category, Status: 404}
	}
	return matches, nil
}

func (f *fakeUpstream) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var errBoom = errors.New("connection reset")

package watch

import (
	"context"
	"sync"
	"time"

	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
)

// Resolver turns feeds into streams. stream.Aggregator satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, refs []model.SourceRef) []model.Stream
}

// Session drives a Machine with a Resolver. It is safe for concurrent use.
//
// Each selection cancels the lookup of the previous one and is bounded by the
// session timeout, after which the selection fails with ErrTimeout.
type Session struct {
	ctx      context.Context
	resolver Resolver
	timeout  time.Duration

	mu      sync.Mutex
	machine *Machine
	cancel  context.CancelFunc
	closed  bool
	updates chan State
}

// NewSession creates an idle session. A non-positive timeout disables the bound.
func NewSession(ctx context.Context, resolver Resolver, timeout time.Duration) *Session {
	return &Session{
		ctx:      ctx,
		resolver: resolver,
		timeout:  timeout,
		machine:  NewMachine(),
		updates:  make(chan State, 1),
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Updates delivers the latest state after every transition. Intermediate
// states may be skipped by a slow reader. The channel is closed by Close.
func (s *Session) Updates() <-chan State {
	return s.updates
}

// SelectSource selects a single feed.
func (s *Session) SelectSource(source, id string) Token {
	return s.SelectSources([]model.SourceRef{{Source: source, ID: id}})
}

// SelectSources selects several feeds at once, typically all feeds of a match.
// The returned token identifies the selection in later states.
func (s *Session) SelectSources(refs []model.SourceRef) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.machine.State().Token
	}

	if s.cancel != nil {
		s.cancel()
	}

	token := s.machine.SelectSource(refs...)

	ctx, cancel := Deadline(s.ctx, s.timeout)
	s.cancel = cancel

	s.publish()

	go s.resolve(ctx, cancel, token, refs)

	return token
}

// SelectStream picks a stream of the current result.
func (s *Session) SelectStream(stream model.Stream) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.machine.SelectStream(stream) {
		return false
	}

	s.publish()
	return true
}

// Close cancels pending lookups. Results arriving afterwards are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	close(s.updates)
}

func (s *Session) resolve(ctx context.Context, cancel context.CancelFunc, token Token, refs []model.SourceRef) {
	defer cancel()

	streams, err := Lookup(ctx, s.resolver, refs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	var applied bool
	if err == nil {
		applied = s.machine.Resolve(token, streams)
	} else {
		applied = s.machine.Fail(token, err)
	}

	if !applied {
		log.WithFields(log.Fields{"token": token}).Debug("discarding stale stream lookup")
		return
	}

	s.publish()
}

// publish must be called with mu held.
func (s *Session) publish() {
	state := s.machine.State()
	for {
		select {
		case s.updates <- state:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}

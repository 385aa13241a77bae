package watch

import (
	"slices"

	"github.com/abouramd/live-stream/model"
)

// Machine is the selection reducer. It performs no I/O and is not safe for
// concurrent use; Session adds both.
//
// Results are applied only while Loading and only when they carry the current
// token, so a slow answer to an earlier selection can never overwrite a newer one.
type Machine struct {
	state State
	next  Token
}

// NewMachine returns a machine in the Idle state.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current snapshot.
func (m *Machine) State() State {
	return m.state
}

// SelectSource starts a new selection from any state and returns its token.
// Streams and the active embed are discarded.
func (m *Machine) SelectSource(refs ...model.SourceRef) Token {
	m.next++
	m.state = State{
		Kind:    Loading,
		Token:   m.next,
		Sources: slices.Clone(refs),
	}
	return m.next
}

// Resolve applies a lookup result. It reports false when the result is stale.
func (m *Machine) Resolve(token Token, streams []model.Stream) bool {
	if !m.accepts(token) {
		return false
	}

	if streams == nil {
		streams = []model.Stream{}
	}

	m.state = State{
		Kind:    Ready,
		Token:   token,
		Sources: m.state.Sources,
		Streams: streams,
	}
	return true
}

// Fail ends the selection with err under the same token rule as Resolve.
func (m *Machine) Fail(token Token, err error) bool {
	if !m.accepts(token) {
		return false
	}

	m.state = State{
		Kind:    Failed,
		Token:   token,
		Sources: m.state.Sources,
		Err:     err,
	}
	return true
}

// SelectStream picks one of the current streams. Only Ready and Chosen accept
// it and the stream must come from the current result.
func (m *Machine) SelectStream(stream model.Stream) bool {
	if m.state.Kind != Ready && m.state.Kind != Chosen {
		return false
	}

	if !slices.ContainsFunc(m.state.Streams, stream.Same) {
		return false
	}

	m.state.Kind = Chosen
	m.state.ActiveEmbedURL = stream.EmbedURL
	return true
}

func (m *Machine) accepts(token Token) bool {
	return m.state.Kind == Loading && m.state.Token == token
}

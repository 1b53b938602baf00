package player

import (
	"fmt"
	"time"
)

// Mock is a test double for the media engine. It records every call.
type Mock struct {
	state      State
	source     string
	next       string
	calls      []string
	sources    []string
	seekCalls  []time.Duration
	sourceErr  error
	enqueueErr error
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) SetSource(path string) error {
	m.calls = append(m.calls, "setSource "+path)
	if m.sourceErr != nil {
		return m.sourceErr
	}
	m.source = path
	m.next = ""
	m.sources = append(m.sources, path)
	return nil
}

func (m *Mock) Play() {
	m.calls = append(m.calls, "play")
	if m.source != "" {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.calls = append(m.calls, "stop")
	m.state = Stopped
}

func (m *Mock) Seek(pos time.Duration) {
	m.calls = append(m.calls, fmt.Sprintf("seek %d", pos.Milliseconds()))
	m.seekCalls = append(m.seekCalls, pos)
}

func (m *Mock) Enqueue(path string) error {
	m.calls = append(m.calls, "enqueue "+path)
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.next = path
	m.sources = append(m.sources, path)
	return nil
}

// Test helpers

// State returns the engine-side state.
func (m *Mock) State() State { return m.state }

// Source returns the loaded path.
func (m *Mock) Source() string { return m.source }

// Next returns the path queued by Enqueue.
func (m *Mock) Next() string { return m.next }

// Calls returns every call in order, e.g. "setSource /a.mp3", "play".
func (m *Mock) Calls() []string { return m.calls }

// Sources returns every path passed to SetSource or Enqueue, in order.
func (m *Mock) Sources() []string { return m.sources }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetSourceError(err error) { m.sourceErr = err }

func (m *Mock) SetEnqueueError(err error) { m.enqueueErr = err }

// FinishCurrent simulates the engine moving onto the enqueued source.
func (m *Mock) FinishCurrent() {
	if m.next == "" {
		m.state = Stopped
		return
	}
	m.source, m.next = m.next, ""
}

// Reset forgets the recorded calls.
func (m *Mock) Reset() {
	m.calls = nil
	m.sources = nil
	m.seekCalls = nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

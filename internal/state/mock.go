package state

import (
	"github.com/llehouerou/shelf/internal/playback"
)

// Mock is a test double for Manager.
type Mock struct {
	snap   playback.Snapshot
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load() (playback.Snapshot, error) {
	return m.snap, nil
}

func (m *Mock) Save(snap playback.Snapshot) error {
	m.snap = snap
	m.saves++
	return nil
}

func (m *Mock) SaveDeferred(snap playback.Snapshot) {
	_ = m.Save(snap)
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

package state

import (
	"github.com/llehouerou/shelf/internal/playback"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	Load() (playback.Snapshot, error)
	Save(snap playback.Snapshot) error
	SaveDeferred(snap playback.Snapshot)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

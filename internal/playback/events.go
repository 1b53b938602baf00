package playback

import (
	"time"

	"github.com/llehouerou/shelf/internal/catalog"
)

// StateChange is emitted when the sequencer state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different track becomes current, or when
// the current track is cleared (Current nil) by a stop from Previous or a
// delete of the playing track.
//
// Auto-advance emits it when the next track is handed to the engine, not
// when the engine starts outputting it.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Entries []QueueEntry
}

// ModeChange is emitted when shuffle mode changes.
type ModeChange struct {
	Shuffle bool
}

// PositionChange is emitted on engine ticks and seeks.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when a recoverable error is absorbed.
type ErrorEvent struct {
	Operation string // e.g., "play", "advance"
	Path      string // track path if applicable
	Err       error
}

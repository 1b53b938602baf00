// Package player is the boundary to the media engine that decodes and
// outputs audio. The engine calls back into the sequencer through
// OnAboutToFinish, OnTick and OnTotalTimeChanged, marshalled onto the
// control goroutine by the host.
package player

import (
	"time"
)

// Interface is the media engine contract.
type Interface interface {
	// SetSource loads path, replacing whatever was loaded.
	SetSource(path string) error
	Play()
	Pause()
	Stop()
	Seek(pos time.Duration)
	// Enqueue loads path to follow the current source without a gap.
	Enqueue(path string) error
}

package player

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrMissingSource is returned when a path cannot be opened.
var ErrMissingSource = errors.New("source not readable")

// LogEngine is a media engine without audio output: it validates that
// sources exist and logs every command. The command-line host drives the
// sequencer through it.
type LogEngine struct {
	log    zerolog.Logger
	state  State
	source string
	next   string
}

// NewLogEngine returns an engine logging through log.
func NewLogEngine(log zerolog.Logger) *LogEngine {
	return &LogEngine{log: log.With().Str("component", "engine").Logger()}
}

func (e *LogEngine) SetSource(path string) error {
	if err := checkSource(path); err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("set source")
		return err
	}
	e.source, e.next = path, ""
	e.log.Debug().Str("path", path).Msg("set source")
	return nil
}

func (e *LogEngine) Play() {
	if e.source == "" {
		return
	}
	e.state = Playing
	e.log.Info().Str("path", e.source).Msg("play")
}

func (e *LogEngine) Pause() {
	if !e.state.CanPause() {
		return
	}
	e.state = Paused
	e.log.Info().Str("path", e.source).Msg("pause")
}

func (e *LogEngine) Stop() {
	if e.state == Stopped {
		return
	}
	e.state = Stopped
	e.log.Info().Msg("stop")
}

func (e *LogEngine) Seek(pos time.Duration) {
	e.log.Debug().Dur("position", pos).Msg("seek")
}

func (e *LogEngine) Enqueue(path string) error {
	if err := checkSource(path); err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("enqueue")
		return err
	}
	e.next = path
	e.log.Debug().Str("path", path).Msg("enqueue")
	return nil
}

// State returns the engine-side state.
func (e *LogEngine) State() State { return e.state }

// Source returns the loaded path.
func (e *LogEngine) Source() string { return e.source }

func checkSource(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Join(ErrMissingSource, err)
	}
	return nil
}

var _ Interface = (*LogEngine)(nil)

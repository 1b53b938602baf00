package playback

import (
	"errors"
	"fmt"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
)

// Play resumes in place when paused. Otherwise it starts the selected
// title fresh and records it in history.
func (s *Sequencer) Play() error {
	if s.state == StatePaused {
		s.engine.Play()
		s.setState(StatePlaying)
		return nil
	}
	sel := s.cursor.Selection()
	if sel.IsZero() {
		if len(s.cursor.Artists()) == 0 {
			return ErrEmptyCatalog
		}
		return ErrEmptySelection
	}
	return s.start(sel, s.load)
}

// Pause pauses a playing track; other states are left alone.
func (s *Sequencer) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.engine.Pause()
	s.setState(StatePaused)
}

// Stop halts playback. The current track is kept so the browser still
// shows it.
func (s *Sequencer) Stop() {
	if s.state == StateStopped {
		return
	}
	s.engine.Stop()
	s.tick = 0
	s.setState(StateStopped)
}

// Advance moves to the next track: the head of the queue if any, else a
// random track in shuffle mode, else the ordered successor of the current
// track. userNext distinguishes a skip from an end-of-track advance for
// logging only; both behave the same.
func (s *Sequencer) Advance(userNext bool) error {
	s.log.Debug().Bool("user", userNext).Msg("advance")
	return s.advance(s.load)
}

func (s *Sequencer) advance(load func(path string) error) error {
	for range maxSkips {
		pos, err := s.next()
		if err != nil {
			return err
		}
		err = s.start(pos, load)
		if !errors.Is(err, catalog.ErrTrackNotFound) {
			return err
		}
		s.log.Warn().Int64("track_id", pos.TrackID).Msg("track vanished, skipping")
		if err := s.cursor.Refresh(); err != nil {
			return err
		}
	}
	return ErrEmptyCatalog
}

// next picks the position to play without side effects beyond consuming
// the queue head.
func (s *Sequencer) next() (browse.Position, error) {
	for !s.queue.IsEmpty() {
		id, _ := s.queue.DequeueFront()
		s.emitQueue()
		pos, err := s.cursor.Locate(id)
		if errors.Is(err, catalog.ErrTrackNotFound) {
			s.log.Warn().Int64("track_id", id).Msg("queued track no longer in catalog")
			continue
		}
		return pos, err
	}

	if s.shuffle {
		return s.pickRandom()
	}
	if cur, ok := s.cursor.Current(); ok {
		return s.cursor.Step(cur)
	}
	if sel := s.cursor.Selection(); !sel.IsZero() {
		return sel, nil
	}
	return s.cursor.First()
}

// pickRandom selects a uniformly random offset into the catalog's natural
// order. The current track is not excluded.
func (s *Sequencer) pickRandom() (browse.Position, error) {
	count, err := s.store.Count()
	if err != nil {
		return browse.Position{}, err
	}
	if count == 0 {
		return browse.Position{}, ErrEmptyCatalog
	}
	id, err := s.store.TrackAtOffset(s.rand.IntN(count))
	if err != nil {
		return browse.Position{}, err
	}
	return s.cursor.Locate(id)
}

// Previous returns to the last valid history entry. With no usable entry
// playback stops and the current track is cleared.
func (s *Sequencer) Previous() error {
	pos, ok, err := s.history.Previous(s.store.Exists)
	if err != nil {
		return err
	}
	if !ok {
		s.stopAndClear()
		return nil
	}
	return s.start(pos, s.load)
}

func (s *Sequencer) stopAndClear() {
	s.engine.Stop()
	s.tick = 0
	s.cursor.ClearCurrent()
	if s.current != nil {
		s.setCurrent(nil)
	}
	s.setState(StateStopped)
}

// start makes pos the current track: moves the browser there, hands the
// path to the engine through load and pushes the position on the history.
func (s *Sequencer) start(pos browse.Position, load func(path string) error) error {
	track, err := s.store.TrackByID(pos.TrackID)
	if err != nil {
		return err
	}
	if err := s.cursor.MoveTo(pos); err != nil {
		return err
	}
	if err := load(track.Path); err != nil {
		s.reportError("play", track.Path, err)
		return fmt.Errorf("load %s: %w", track.Path, err)
	}

	cur, _ := s.cursor.Current()
	s.history.Push(cur)
	if err := s.store.IncrementPlayCount(track.ID); err != nil {
		s.log.Warn().Err(err).Int64("track_id", track.ID).Msg("play count not updated")
	} else {
		track.PlayCount++
	}

	s.tick = 0
	if s.pending.id == track.ID && s.pending.at > 0 {
		s.engine.Seek(s.pending.at)
		s.tick = s.pending.at
	}
	s.pending = pendingSeek{}

	s.log.Info().Int64("track_id", track.ID).Str("label", track.Label()).Msg("now playing")
	s.setCurrent(track)
	s.setState(StatePlaying)
	return nil
}

// load replaces the engine source and starts it.
func (s *Sequencer) load(path string) error {
	if err := s.engine.SetSource(path); err != nil {
		return err
	}
	s.engine.Play()
	return nil
}

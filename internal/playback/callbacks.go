package playback

import (
	"errors"
	"time"
)

// OnAboutToFinish is the engine's end-of-track notice. The next track is
// chosen like Advance(false) and handed over with Enqueue so the engine
// can chain it without a gap.
func (s *Sequencer) OnAboutToFinish() error {
	if s.state != StatePlaying {
		return nil
	}
	err := s.advance(s.engine.Enqueue)
	if errors.Is(err, ErrEmptyCatalog) {
		return nil
	}
	if err != nil {
		s.reportError("advance", "", err)
	}
	return err
}

// OnTick records the engine position.
func (s *Sequencer) OnTick(pos time.Duration) {
	s.tick = pos
	s.broadcast(func(sub *Subscription) { sub.sendPosition(pos) })
}

// OnTotalTimeChanged stores the length the engine found for the current
// track when the catalog has none.
func (s *Sequencer) OnTotalTimeChanged(total time.Duration) error {
	if s.current == nil || total <= 0 || s.current.Length > 0 {
		return nil
	}
	if err := s.store.SetLength(s.current.ID, total); err != nil {
		return err
	}
	s.current.Length = total
	return nil
}

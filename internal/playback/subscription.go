package playback

import (
	"sync"
	"sync/atomic"
	"time"
)

const eventBufferSize = 16

// Subscription delivers sequencer events on buffered channels. Sends never
// block the sequencer: an event that finds its buffer full is dropped and
// counted.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	Error           <-chan ErrorEvent
	// Done is closed when the subscription ends.
	Done <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	queue    chan QueueChange
	mode     chan ModeChange
	errs     chan ErrorEvent
	done     chan struct{}

	closeOnce sync.Once
	dropped   atomic.Uint64
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		queue:    make(chan QueueChange, eventBufferSize),
		mode:     make(chan ModeChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.PositionChanged = s.state, s.track, s.position
	s.QueueChanged, s.ModeChanged, s.Error = s.queue, s.mode, s.errs
	s.Done = s.done
	return s
}

// Dropped returns how many events were lost to a full buffer.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func offer[T any](s *Subscription, ch chan T, e T) {
	select {
	case ch <- e:
	default:
		s.dropped.Add(1)
	}
}

func (s *Subscription) sendState(e StateChange) { offer(s, s.state, e) }
func (s *Subscription) sendTrack(e TrackChange) { offer(s, s.track, e) }
func (s *Subscription) sendQueue(e QueueChange) { offer(s, s.queue, e) }
func (s *Subscription) sendMode(e ModeChange) { offer(s, s.mode, e) }
func (s *Subscription) sendError(e ErrorEvent) { offer(s, s.errs, e) }
func (s *Subscription) sendPosition(at time.Duration) { offer(s, s.position, PositionChange{Position: at}) }

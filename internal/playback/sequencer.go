// Package playback is the sequencing engine: it decides which track plays
// next from the queue, shuffle or ordered traversal, records history, and
// repairs the browser, queue and history after catalog deletes.
package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/importer"
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/playlist"
)

var (
	// ErrEmptyCatalog is returned when there is no track to play at all.
	ErrEmptyCatalog = browse.ErrEmptyCatalog
	// ErrEmptySelection is returned when the selection addresses no track.
	ErrEmptySelection = errors.New("no track selected")
	// ErrNoImporter is returned by Import on a sequencer built without one.
	ErrNoImporter = errors.New("no importer configured")
)

// maxSkips bounds how many vanished tracks one advance steps over.
const maxSkips = 16

// Options tunes a Sequencer.
type Options struct {
	HistorySize int                // 0 means playlist.MaxHistory
	Rand        Rand               // nil means NewRand(0)
	Importer    *importer.Importer // optional, enables Import
}

// Sequencer owns the browse cursor, the queue and the history, and drives
// the media engine from them.
//
// A Sequencer is not safe for concurrent use. Engine callbacks must be
// delivered on the goroutine issuing the user commands.
type Sequencer struct {
	store    Catalog
	engine   player.Interface
	log      zerolog.Logger
	cursor   *browse.Cursor
	queue    *playlist.Queue
	history  *playlist.History
	rand     Rand
	importer *importer.Importer

	state        State
	shuffle      bool
	panelVisible bool
	current      *catalog.Track
	tick         time.Duration
	pending      pendingSeek

	subs   []*Subscription
	subsMu sync.RWMutex
}

// pendingSeek is a restored tick position applied when track id next starts.
type pendingSeek struct {
	id int64
	at time.Duration
}

// New builds a sequencer over store and loads the browser lists.
func New(store Catalog, engine player.Interface, log zerolog.Logger, opts Options) (*Sequencer, error) {
	r := opts.Rand
	if r == nil {
		r = NewRand(0)
	}
	s := &Sequencer{
		store:    store,
		engine:   engine,
		log:      log.With().Str("component", "sequencer").Logger(),
		cursor:   browse.New(store),
		queue:    playlist.NewQueue(),
		history:  playlist.NewHistory(opts.HistorySize),
		rand:     r,
		importer: opts.Importer,
	}
	if err := s.cursor.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Cursor exposes the browser for list views and selection.
func (s *Sequencer) Cursor() *browse.Cursor {
	return s.cursor
}

// State returns the current sequencer state.
func (s *Sequencer) State() State {
	return s.state
}

// Shuffle returns whether shuffle is enabled.
func (s *Sequencer) Shuffle() bool {
	return s.shuffle
}

// SetShuffle turns shuffle on or off.
func (s *Sequencer) SetShuffle(enabled bool) {
	if s.shuffle == enabled {
		return
	}
	s.shuffle = enabled
	s.log.Debug().Bool("shuffle", enabled).Msg("shuffle mode")
	s.broadcast(func(sub *Subscription) { sub.sendMode(ModeChange{Shuffle: enabled}) })
}

// ToggleShuffle flips shuffle and returns the new mode.
func (s *Sequencer) ToggleShuffle() bool {
	s.SetShuffle(!s.shuffle)
	return s.shuffle
}

// PanelVisible is the host's queue panel flag, kept for the session snapshot.
func (s *Sequencer) PanelVisible() bool {
	return s.panelVisible
}

// SetPanelVisible records the queue panel flag.
func (s *Sequencer) SetPanelVisible(visible bool) {
	s.panelVisible = visible
}

// Current returns a copy of the current track, or nil.
func (s *Sequencer) Current() *catalog.Track {
	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

// Tick returns the last position reported by the engine.
func (s *Sequencer) Tick() time.Duration {
	return s.tick
}

// HistoryLen returns the number of history entries.
func (s *Sequencer) HistoryLen() int {
	return s.history.Len()
}

// Subscribe creates a new event subscription.
func (s *Sequencer) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Unsubscribe ends sub and stops delivering to it. Unknown subscriptions
// are ignored.
func (s *Sequencer) Unsubscribe(sub *Subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, x := range s.subs {
		if x == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			sub.close()
			return
		}
	}
}

// Close signals every subscriber and stops the engine.
func (s *Sequencer) Close() error {
	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	if s.state.IsActive() {
		s.engine.Stop()
	}
	return nil
}

func (s *Sequencer) broadcast(send func(sub *Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}

func (s *Sequencer) setState(st State) {
	if st == s.state {
		return
	}
	prev := s.state
	s.state = st
	s.log.Debug().Stringer("from", prev).Stringer("to", st).Msg("state")
	s.broadcast(func(sub *Subscription) { sub.sendState(StateChange{Previous: prev, Current: st}) })
}

func (s *Sequencer) setCurrent(t *catalog.Track) {
	prev := s.current
	s.current = t
	e := TrackChange{Previous: copyTrack(prev), Current: copyTrack(t)}
	s.broadcast(func(sub *Subscription) { sub.sendTrack(e) })
}

func (s *Sequencer) reportError(op, path string, err error) {
	s.log.Warn().Err(err).Str("op", op).Str("path", path).Msg("playback error")
	e := ErrorEvent{Operation: op, Path: path, Err: err}
	s.broadcast(func(sub *Subscription) { sub.sendError(e) })
}

func copyTrack(t *catalog.Track) *catalog.Track {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

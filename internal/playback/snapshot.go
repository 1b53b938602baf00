package playback

import (
	"errors"
	"strconv"
	"time"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
)

// Flat snapshot keys. The current_* keys hold the browser selection.
const (
	KeyArtist       = "current_artist"
	KeyArtistAll    = "current_artist_all"
	KeyAlbum        = "current_album"
	KeyAlbumName    = "current_album_name"
	KeyTitle        = "current_title"
	KeyTrackID      = "current_track_id"
	KeyPlayingID    = "playing_track_id"
	KeyTick         = "tick_position"
	KeyShuffle      = "shuffle"
	KeyPanelVisible = "playlist_panel_visible"
	KeyState        = "playback_state"
)

// Snapshot is the session state handed to the host at shutdown and
// replayed at startup.
type Snapshot struct {
	Selection    browse.Position
	PlayingID    int64 // current track, 0 when none
	Tick         time.Duration
	Shuffle      bool
	PanelVisible bool
	State        State
	Queue        []int64
	History      []browse.Position
}

// Flat returns the scalar part of the snapshot as key/value pairs.
// Queue and History are list-valued and persisted separately.
func (s Snapshot) Flat() map[string]string {
	return map[string]string{
		KeyArtist:       s.Selection.Artist.Name,
		KeyArtistAll:    strconv.FormatBool(s.Selection.Artist.All),
		KeyAlbum:        strconv.Itoa(s.Selection.AlbumIndex),
		KeyAlbumName:    s.Selection.Album.Name,
		KeyTitle:        strconv.Itoa(s.Selection.TitleIndex),
		KeyTrackID:      strconv.FormatInt(s.Selection.TrackID, 10),
		KeyPlayingID:    strconv.FormatInt(s.PlayingID, 10),
		KeyTick:         strconv.FormatInt(s.Tick.Milliseconds(), 10),
		KeyShuffle:      strconv.FormatBool(s.Shuffle),
		KeyPanelVisible: strconv.FormatBool(s.PanelVisible),
		KeyState:        s.State.String(),
	}
}

// ParseFlat rebuilds the scalar part of a snapshot. Missing or malformed
// values fall back to a fresh session's defaults.
func ParseFlat(kv map[string]string) Snapshot {
	sel := browse.Start
	sel.Artist = catalog.Named(kv[KeyArtist])
	if all, ok := parseBool(kv, KeyArtistAll); ok {
		sel.Artist.All = all
	} else if kv[KeyArtist] == "" {
		sel.Artist = catalog.Any
	}
	if sel.Artist.All {
		sel.Artist.Name = ""
	}
	sel.AlbumIndex = max(parseInt(kv, KeyAlbum, 0), 0)
	if sel.AlbumIndex > 0 {
		sel.Album = catalog.Named(kv[KeyAlbumName])
	}
	sel.TitleIndex = parseInt(kv, KeyTitle, -1)
	sel.TrackID = int64(parseInt(kv, KeyTrackID, 0))

	shuffle, _ := parseBool(kv, KeyShuffle)
	panel, _ := parseBool(kv, KeyPanelVisible)
	return Snapshot{
		Selection:    sel,
		PlayingID:    int64(parseInt(kv, KeyPlayingID, 0)),
		Tick:         time.Duration(parseInt(kv, KeyTick, 0)) * time.Millisecond,
		Shuffle:      shuffle,
		PanelVisible: panel,
		State:        ParseState(kv[KeyState]),
	}
}

func parseBool(kv map[string]string, key string) (value, ok bool) {
	b, err := strconv.ParseBool(kv[key])
	if err != nil {
		return false, false
	}
	return b, true
}

func parseInt(kv map[string]string, key string, def int) int {
	n, err := strconv.Atoi(kv[key])
	if err != nil {
		return def
	}
	return n
}

// Snapshot captures the session.
func (s *Sequencer) Snapshot() Snapshot {
	snap := Snapshot{
		Selection:    s.cursor.Selection(),
		Tick:         s.tick,
		Shuffle:      s.shuffle,
		PanelVisible: s.panelVisible,
		State:        s.state,
		Queue:        s.queue.IDs(),
		History:      s.history.Entries(),
	}
	if s.current != nil {
		snap.PlayingID = s.current.ID
	}
	return snap
}

// Restore replays a snapshot. Ids no longer in the catalog are dropped
// from the queue and history, and a vanished playing track leaves the
// session stopped.
//
// A snapshot taken while playing or paused reloads the track into the
// engine at the saved tick; otherwise the tick is applied the next time
// that track starts.
func (s *Sequencer) Restore(snap Snapshot) error {
	s.SetShuffle(snap.Shuffle)
	s.panelVisible = snap.PanelVisible

	var queued []int64
	for _, id := range snap.Queue {
		ok, err := s.store.Exists(id)
		if err != nil {
			return err
		}
		if ok {
			queued = append(queued, id)
		}
	}
	s.queue.Restore(queued, func(id int64) string {
		if t, err := s.store.TrackByID(id); err == nil {
			return t.Label()
		}
		return ""
	})
	s.emitQueue()

	s.history.Restore(snap.History)
	if _, err := s.history.Prune(s.store.Exists); err != nil {
		return err
	}

	if err := s.restorePlaying(snap); err != nil {
		return err
	}
	return s.cursor.RestoreSelection(snap.Selection)
}

func (s *Sequencer) restorePlaying(snap Snapshot) error {
	if snap.PlayingID == 0 {
		return nil
	}
	track, err := s.store.TrackByID(snap.PlayingID)
	if errors.Is(err, catalog.ErrTrackNotFound) {
		s.log.Info().Int64("track_id", snap.PlayingID).Msg("saved track no longer in catalog")
		return nil
	}
	if err != nil {
		return err
	}

	// The history top carries the browsing context the track was played in.
	pos, ok := s.history.Top()
	if !ok || pos.TrackID != track.ID {
		if pos, err = s.cursor.Locate(track.ID); err != nil {
			return err
		}
	}
	if err := s.cursor.MoveTo(pos); err != nil {
		return err
	}

	s.pending = pendingSeek{id: track.ID, at: snap.Tick}
	if snap.State.IsActive() {
		s.resume(track, snap.State)
		return nil
	}
	s.setCurrent(track)
	return nil
}

// resume reloads the restored track without recording history.
func (s *Sequencer) resume(track *catalog.Track, st State) {
	if err := s.engine.SetSource(track.Path); err != nil {
		s.reportError("restore", track.Path, err)
		s.setCurrent(track)
		return
	}
	if s.pending.at > 0 {
		s.engine.Seek(s.pending.at)
	}
	s.tick = s.pending.at
	s.pending = pendingSeek{}
	if st == StatePlaying {
		s.engine.Play()
	}
	s.setCurrent(track)
	s.setState(st)
}

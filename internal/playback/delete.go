package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/importer"
)

// Delete removes scope from the catalog and, before returning, drops the
// vanished ids from the queue and history, repairs the browser and stops
// playback if the current track went away. Returns the number of rows
// removed.
func (s *Sequencer) Delete(scope catalog.Scope) (int64, error) {
	n, err := s.store.Delete(scope)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("rows", n).Int("scope", int(scope.Kind)).Msg("deleted")
	if n == 0 {
		return 0, nil
	}
	return n, s.repair()
}

// DeleteSelection deletes what the selection addresses at level. The
// "All" entries never widen a delete: an artist delete with "All"
// selected, or an album delete with "All" albums selected, is refused
// with ErrEmptySelection. LevelAll empties the catalog.
func (s *Sequencer) DeleteSelection(level Level) (int64, error) {
	scope, err := s.scopeFor(level)
	if err != nil {
		return 0, err
	}
	return s.Delete(scope)
}

func (s *Sequencer) scopeFor(level Level) (catalog.Scope, error) {
	sel := s.cursor.Selection()
	switch level {
	case LevelAll:
		return catalog.AllTracks(), nil
	case LevelArtist:
		if sel.Artist.All {
			return catalog.Scope{}, ErrEmptySelection
		}
		return catalog.ByArtist(sel.Artist.Name), nil
	case LevelAlbum:
		switch {
		case sel.Album.All:
			return catalog.Scope{}, ErrEmptySelection
		case sel.Artist.All:
			return catalog.ByAlbum(sel.Album.Name), nil
		}
		return catalog.ByArtistAlbum(sel.Artist.Name, sel.Album.Name), nil
	case LevelTitle:
		if sel.IsZero() {
			return catalog.Scope{}, ErrEmptySelection
		}
		return catalog.ByID(sel.TrackID), nil
	}
	return catalog.Scope{}, fmt.Errorf("unknown delete level %d", level)
}

// repair runs every step even when an earlier one fails, so a storage
// error never leaves the browser or the current track half-updated. The
// errors are joined.
func (s *Sequencer) repair() error {
	var errs []error

	dropped, err := s.queue.Prune(s.store.Exists)
	if err != nil {
		errs = append(errs, fmt.Errorf("prune queue: %w", err))
	}
	if dropped > 0 {
		s.emitQueue()
	}
	if _, err := s.history.Prune(s.store.Exists); err != nil {
		errs = append(errs, fmt.Errorf("prune history: %w", err))
	}
	if err := s.cursor.Refresh(); err != nil {
		errs = append(errs, fmt.Errorf("refresh browser: %w", err))
	}

	if s.current != nil {
		ok, err := s.store.Exists(s.current.ID)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("check current track: %w", err))
		case !ok:
			s.log.Info().Int64("track_id", s.current.ID).Msg("current track deleted, stopping")
			s.engine.Stop()
			s.tick = 0
			s.pending = pendingSeek{}
			s.setCurrent(nil)
			s.setState(StateStopped)
		}
	}
	return errors.Join(errs...)
}

// Import runs the configured importer over files and refreshes the
// browser, also after a cancelled run.
func (s *Sequencer) Import(ctx context.Context, files []string, progress chan<- importer.Progress) (importer.Result, error) {
	if s.importer == nil {
		if progress != nil {
			close(progress)
		}
		return importer.Result{}, ErrNoImporter
	}
	res, err := s.importer.Run(ctx, files, progress)
	if rerr := s.cursor.Refresh(); rerr != nil {
		return res, errors.Join(err, rerr)
	}
	return res, err
}

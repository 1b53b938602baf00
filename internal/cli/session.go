package cli

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/db"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/importer"
	"github.com/llehouerou/shelf/internal/playback"
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/state"
)

// session is one opened catalog with the playback session replayed.
type session struct {
	db    *sql.DB
	store *catalog.Store
	state state.Interface
	seq   *playback.Sequencer
}

func (a *app) openStore() (*sql.DB, *catalog.Store, error) {
	sqlDB, err := db.Open(a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	store, err := catalog.New(sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("%w: %w", db.ErrStorageUnavailable, err)
	}
	return sqlDB, store, nil
}

// openSession opens the catalog and restores the saved session into a
// sequencer driving a logging engine.
func (a *app) openSession() (*session, error) {
	sqlDB, store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	s := &session{db: sqlDB, store: store}

	s.state, err = state.Open(sqlDB, a.log)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", db.ErrStorageUnavailable, err)
	}

	s.seq, err = playback.New(store, player.NewLogEngine(a.log), a.log, playback.Options{
		HistorySize: a.cfg.GetHistorySize(),
		Rand:        playback.NewRand(a.cfg.Seed),
		Importer:    importer.New(store, nil, a.log),
	})
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	snap, err := s.state.Load()
	if err != nil {
		a.report(errmsg.OpSessionLoad, err)
		return s, nil
	}
	if err := s.seq.Restore(snap); err != nil {
		a.report(errmsg.OpSessionLoad, err)
	}
	return s, nil
}

// close saves the session and releases the database.
func (a *app) close(s *session) error {
	var saveErr error
	if s.seq != nil && s.state != nil {
		if err := s.state.Save(s.seq.Snapshot()); err != nil {
			a.report(errmsg.OpSessionSave, err)
			saveErr = err
		}
		_ = s.state.Close()
		_ = s.seq.Close()
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	return saveErr
}

// withSession runs fn against the restored session and saves it afterwards.
func (a *app) withSession(fn func(s *session) error) (err error) {
	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(s); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// report prints a recoverable failure.
func (a *app) report(op errmsg.Op, err error) {
	fmt.Fprintln(a.err, errmsg.Format(op, err))
}

// absorb reports the failures the engine recovers from and returns nil for
// them; anything else is passed through.
func (a *app) absorb(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	var qe *catalog.QueryError
	switch {
	case errors.Is(err, db.ErrStorageUnavailable):
		return err
	case errors.Is(err, playback.ErrEmptyCatalog),
		errors.Is(err, playback.ErrEmptySelection),
		errors.Is(err, playback.ErrNoImporter),
		errors.Is(err, catalog.ErrTrackNotFound),
		errors.Is(err, browse.ErrOutOfRange),
		errors.Is(err, player.ErrMissingSource),
		errors.As(err, &qe):
		a.report(op, err)
		return nil
	}
	return err
}

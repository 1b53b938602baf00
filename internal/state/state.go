// Package state persists the playback session (browser position, tick,
// modes, queue and history) next to the catalog.
package state

import (
	"database/sql"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shelf/internal/playback"
)

const saveDebounce = 500 * time.Millisecond

// Manager reads and writes the session tables. It does not own the
// database handle.
type Manager struct {
	db        *sql.DB
	log       zerolog.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *playback.Snapshot
}

// Open prepares the session tables in db.
func Open(db *sql.DB, log zerolog.Logger) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, err
	}
	return &Manager{db: db, log: log.With().Str("component", "state").Logger()}, nil
}

// Load returns the saved session. A database without one yields the
// snapshot of a fresh session.
func (m *Manager) Load() (playback.Snapshot, error) {
	kv, err := getSession(m.db)
	if err != nil {
		return playback.Snapshot{}, err
	}
	snap := playback.ParseFlat(kv)
	if snap.Queue, err = getQueue(m.db); err != nil {
		return playback.Snapshot{}, err
	}
	if snap.History, err = getHistory(m.db); err != nil {
		return playback.Snapshot{}, err
	}
	return snap, nil
}

// Save writes snap in one transaction, replacing the previous session.
// A pending deferred save is discarded.
func (m *Manager) Save(snap playback.Snapshot) error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.pending = nil
	m.saveMu.Unlock()

	return saveSession(m.db, snap)
}

// SaveDeferred coalesces rapid saves: snap is written once no newer one
// arrives for a short while, or on Close.
func (m *Manager) SaveDeferred(snap playback.Snapshot) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &snap

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.flush(*pending)
		}
	})
}

// Close flushes a pending deferred save.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		return saveSession(m.db, *pending)
	}
	return nil
}

func (m *Manager) flush(snap playback.Snapshot) {
	if err := saveSession(m.db, snap); err != nil {
		m.log.Warn().Err(err).Msg("session not saved")
	}
}

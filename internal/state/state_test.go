package state

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
	dbutil "github.com/llehouerou/shelf/internal/db"
	"github.com/llehouerou/shelf/internal/playback"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbutil.Open(dbutil.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := initSchema(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func setupManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(setupTestDB(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return m
}

func sampleSnapshot() playback.Snapshot {
	return playback.Snapshot{
		Selection: browse.Position{
			Artist:     catalog.Named("Artist 1"),
			Album:      catalog.Named("Album 1"),
			AlbumIndex: 1,
			TitleIndex: 2,
			TrackID:    3,
		},
		PlayingID:    1,
		Tick:         95 * time.Second,
		Shuffle:      true,
		PanelVisible: true,
		State:        playback.StatePaused,
		Queue:        []int64{7, 3, 9},
		History: []browse.Position{
			{Artist: catalog.Named("Artist 1"), Album: catalog.Named("Album 1"), AlbumIndex: 1, TitleIndex: 0, TrackID: 1},
			{Artist: catalog.Any, Album: catalog.Any, TitleIndex: 4, TrackID: 5},
			{Artist: catalog.Named("Artist 1"), Album: catalog.Named("Album 1"), AlbumIndex: 1, TitleIndex: 2, TrackID: 3},
		},
	}
}

// TestLoad_Empty tests loading from a database without a saved session.
func TestLoad_Empty(t *testing.T) {
	m := setupManager(t)

	snap, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Selection != browse.Start {
		t.Errorf("Selection = %+v, want browse.Start", snap.Selection)
	}
	if snap.PlayingID != 0 {
		t.Errorf("PlayingID = %d, want 0", snap.PlayingID)
	}
	if snap.State != playback.StateStopped {
		t.Errorf("State = %v, want Stopped", snap.State)
	}
	if len(snap.Queue) != 0 || len(snap.History) != 0 {
		t.Errorf("expected empty queue and history, got %v / %v", snap.Queue, snap.History)
	}
}

// TestSaveAndLoad tests saving and retrieving a full session.
func TestSaveAndLoad(t *testing.T) {
	m := setupManager(t)
	want := sampleSnapshot()

	if err := m.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Selection != want.Selection {
		t.Errorf("Selection = %+v, want %+v", got.Selection, want.Selection)
	}
	if got.PlayingID != want.PlayingID {
		t.Errorf("PlayingID = %d, want %d", got.PlayingID, want.PlayingID)
	}
	if got.Tick != want.Tick {
		t.Errorf("Tick = %v, want %v", got.Tick, want.Tick)
	}
	if got.Shuffle != want.Shuffle || got.PanelVisible != want.PanelVisible {
		t.Errorf("modes = %v/%v, want %v/%v", got.Shuffle, got.PanelVisible, want.Shuffle, want.PanelVisible)
	}
	if got.State != want.State {
		t.Errorf("State = %v, want %v", got.State, want.State)
	}
	if len(got.Queue) != len(want.Queue) {
		t.Fatalf("Queue = %v, want %v", got.Queue, want.Queue)
	}
	for i := range want.Queue {
		if got.Queue[i] != want.Queue[i] {
			t.Errorf("Queue[%d] = %d, want %d", i, got.Queue[i], want.Queue[i])
		}
	}
	if len(got.History) != len(want.History) {
		t.Fatalf("History has %d entries, want %d", len(got.History), len(want.History))
	}
	for i := range want.History {
		if got.History[i] != want.History[i] {
			t.Errorf("History[%d] = %+v, want %+v", i, got.History[i], want.History[i])
		}
	}
}

// TestSave_ReplacesPrevious tests that lists are replaced, not appended.
func TestSave_ReplacesPrevious(t *testing.T) {
	m := setupManager(t)
	if err := m.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	next := playback.Snapshot{Selection: browse.Start, Queue: []int64{42}}
	if err := m.Save(next); err != nil {
		t.Fatalf("Save (update) failed: %v", err)
	}

	got, _ := m.Load()
	if len(got.Queue) != 1 || got.Queue[0] != 42 {
		t.Errorf("Queue = %v, want [42]", got.Queue)
	}
	if len(got.History) != 0 {
		t.Errorf("History = %v, want empty", got.History)
	}
	if got.Shuffle {
		t.Error("Shuffle should have been overwritten")
	}
	if got.Selection != browse.Start || got.PlayingID != 0 {
		t.Errorf("Selection = %+v playing %d, want browse.Start", got.Selection, got.PlayingID)
	}
}

// TestSaveDeferred_FlushedOnClose tests that Close writes a pending save.
func TestSaveDeferred_FlushedOnClose(t *testing.T) {
	m := setupManager(t)

	m.SaveDeferred(playback.Snapshot{Queue: []int64{1}})
	m.SaveDeferred(sampleSnapshot())
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Queue) != 3 {
		t.Errorf("Queue = %v, want the last deferred snapshot", got.Queue)
	}
}

// TestSave_CancelsDeferred tests that an explicit save wins over a pending one.
func TestSave_CancelsDeferred(t *testing.T) {
	m := setupManager(t)

	m.SaveDeferred(sampleSnapshot())
	if err := m.Save(playback.Snapshot{Queue: []int64{8}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, _ := m.Load()
	if len(got.Queue) != 1 || got.Queue[0] != 8 {
		t.Errorf("Queue = %v, want [8]", got.Queue)
	}
}

// TestOpen_SharesCatalogDatabase tests that session tables live beside the catalog.
func TestOpen_SharesCatalogDatabase(t *testing.T) {
	db := setupTestDB(t)
	store, err := catalog.New(db)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	id, err := store.Insert(catalog.Track{Artist: "A", Album: "X", Title: "a1", Path: "/a1"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	m, err := Open(db, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Save(playback.Snapshot{Queue: []int64{id}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if n, _ := store.Count(); n != 1 {
		t.Errorf("catalog count = %d, want 1", n)
	}
}

// TestInitSchema_Idempotent tests that reopening keeps the saved session.
func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	m, _ := Open(db, zerolog.Nop())
	if err := m.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := Open(db, zerolog.Nop())
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	got, _ := reopened.Load()
	if len(got.Queue) != 3 {
		t.Errorf("Queue = %v, want 3 entries", got.Queue)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SaveDeferred(sampleSnapshot())
	got, _ := m.Load()
	if len(got.Queue) != 3 || m.Saves() != 1 {
		t.Errorf("mock did not record the save: %+v, saves=%d", got, m.Saves())
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("expected mock to be closed")
	}
}

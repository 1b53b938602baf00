package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/shelf/internal/db"
)

// Store reads and writes the tracks table. Every read goes straight to the
// database so the browser always sees the latest committed writes.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates the tracks table if needed and returns a store over it.
func New(db *sql.DB) (*Store, error) {
	if err := initSchema(db); err != nil {
		return nil, queryErr("init schema", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// DB exposes the underlying handle so session state can share the file.
func (s *Store) DB() *sql.DB {
	return s.db
}

const trackColumns = `id, artist, album, year, track_number, title, path, length, play_count`

const insertTrack = `
	INSERT INTO tracks (artist, album, year, track_number, title, path, length, play_count, added_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)
`

// Insert adds a track and returns its freshly assigned id.
// Duplicates are not detected: importing a file twice yields two rows.
func (s *Store) Insert(t Track) (int64, error) {
	res, err := s.db.Exec(insertTrack, insertArgs(t, s.now())...)
	if err != nil {
		return 0, queryErr("insert", err)
	}
	id, err := res.LastInsertId()
	return id, queryErr("insert", err)
}

// InsertMany adds all tracks in a single transaction.
func (s *Store) InsertMany(tracks []Track) ([]int64, error) {
	ids := make([]int64, 0, len(tracks))
	err := dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(insertTrack)
		if err != nil {
			return err
		}
		defer stmt.Close()

		addedAt := s.now()
		for _, t := range tracks {
			res, err := stmt.Exec(insertArgs(t, addedAt)...)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, queryErr("insert many", err)
	}
	return ids, nil
}

func insertArgs(t Track, addedAt time.Time) []any {
	return []any{
		t.Artist,
		t.Album,
		dbutil.NullIfZero(int64(t.Year)),
		dbutil.NullIfZero(int64(t.TrackNumber)),
		t.Title,
		t.Path,
		t.Length.Milliseconds(),
		addedAt.Unix(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(row rowScanner) (Track, error) {
	var t Track
	var year, trackNum sql.NullInt64
	var lengthMs int64
	err := row.Scan(&t.ID, &t.Artist, &t.Album, &year, &trackNum, &t.Title, &t.Path, &lengthMs, &t.PlayCount)
	if err != nil {
		return Track{}, err
	}
	t.Year = int(dbutil.NullInt64Value(year))
	t.TrackNumber = int(dbutil.NullInt64Value(trackNum))
	t.Length = time.Duration(lengthMs) * time.Millisecond
	return t, nil
}

// TrackByID returns the track with the given id, or ErrTrackNotFound.
func (s *Store) TrackByID(id int64) (*Track, error) {
	row := s.db.QueryRow(`SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, queryErr("track by id", err)
	}
	return &t, nil
}

// Exists reports whether id is still in the catalog.
func (s *Store) Exists(id int64) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM tracks WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, queryErr("exists", err)
	}
	return true, nil
}

// Count returns the total number of tracks.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tracks`).Scan(&count)
	return count, queryErr("count", err)
}

// AllTracks returns every track in the catalog's natural (id) order.
func (s *Store) AllTracks() ([]Track, error) {
	rows, err := s.db.Query(`SELECT ` + trackColumns + ` FROM tracks ORDER BY id`)
	if err != nil {
		return nil, queryErr("all tracks", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, queryErr("all tracks", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, queryErr("all tracks", rows.Err())
}

// TrackAtOffset returns the id at offset in the catalog's natural (id)
// order. It backs shuffle selection.
func (s *Store) TrackAtOffset(offset int) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM tracks ORDER BY id LIMIT 1 OFFSET ?`, offset).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: offset %d", ErrTrackNotFound, offset)
	}
	if err != nil {
		return 0, queryErr("track at offset", err)
	}
	return id, nil
}

// Delete removes every row matching scope in one statement and returns
// how many rows went away.
func (s *Store) Delete(scope Scope) (int64, error) {
	var (
		query string
		args  []any
	)
	switch scope.Kind {
	case ScopeAll:
		query = `DELETE FROM tracks`
	case ScopeArtist:
		query = `DELETE FROM tracks WHERE artist = ?`
		args = []any{scope.Artist}
	case ScopeArtistAlbum:
		query = `DELETE FROM tracks WHERE artist = ? AND album = ?`
		args = []any{scope.Artist, scope.Album}
	case ScopeAlbum:
		query = `DELETE FROM tracks WHERE album = ? COLLATE NOCASE`
		args = []any{scope.Album}
	case ScopeTrack:
		query = `DELETE FROM tracks WHERE id = ?`
		args = []any{scope.ID}
	default:
		return 0, fmt.Errorf("catalog: unknown delete scope %d", scope.Kind)
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, queryErr("delete", err)
	}
	n, err := res.RowsAffected()
	return n, queryErr("delete", err)
}

// IncrementPlayCount bumps play_count for a track that started playing.
func (s *Store) IncrementPlayCount(id int64) error {
	_, err := s.db.Exec(`UPDATE tracks SET play_count = play_count + 1 WHERE id = ?`, id)
	return queryErr("increment play count", err)
}

// SetLength records the length reported by the media engine, unless the
// row already carries one.
func (s *Store) SetLength(id int64, length time.Duration) error {
	_, err := s.db.Exec(`
		UPDATE tracks SET length = ?
		WHERE id = ? AND length = 0
	`, length.Milliseconds(), id)
	return queryErr("set length", err)
}

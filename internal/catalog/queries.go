package catalog

import (
	"database/sql"
)

// Artists returns the distinct artist names, case-insensitively ordered.
// The "All" pseudo-entry is not included; lists put it at index 0.
func (s *Store) Artists() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT artist FROM tracks ORDER BY artist COLLATE NOCASE, artist
	`)
	if err != nil {
		return nil, queryErr("artists", err)
	}
	defer rows.Close()

	var artists []string
	for rows.Next() {
		var artist string
		if err := rows.Scan(&artist); err != nil {
			return nil, queryErr("artists", err)
		}
		artists = append(artists, artist)
	}
	return artists, queryErr("artists", rows.Err())
}

// Albums returns the album list for an artist filter.
//
// For Any, albums of every artist are grouped by name case-insensitively and
// ordered by name. For a named artist, albums are ordered by year then name.
// The "All" pseudo-entry is not included.
func (s *Store) Albums(artist Filter) ([]Album, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if artist.All {
		rows, err = s.db.Query(`
			SELECT MIN(artist), album, MAX(year)
			FROM tracks
			GROUP BY album COLLATE NOCASE
			ORDER BY album COLLATE NOCASE
		`)
	} else {
		rows, err = s.db.Query(`
			SELECT artist, album, MAX(year) AS y
			FROM tracks
			WHERE artist = ?
			GROUP BY album
			ORDER BY y, album COLLATE NOCASE
		`, artist.Name)
	}
	if err != nil {
		return nil, queryErr("albums", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		var year sql.NullInt64
		if err := rows.Scan(&a.Artist, &a.Name, &year); err != nil {
			return nil, queryErr("albums", err)
		}
		a.Year = int(year.Int64)
		albums = append(albums, a)
	}
	return albums, queryErr("albums", rows.Err())
}

// queryShape picks one of the four title list statements.
type queryShape int

const (
	shapeEverything queryShape = iota
	shapeArtist
	shapeAlbum
	shapeArtistAlbum
)

func titleShape(artist, album Filter) queryShape {
	switch {
	case artist.All && album.All:
		return shapeEverything
	case album.All:
		return shapeArtist
	case artist.All:
		return shapeAlbum
	default:
		return shapeArtistAlbum
	}
}

var titleQueries = map[queryShape]string{
	shapeEverything: `
		SELECT id, track_number, title FROM tracks
		ORDER BY title COLLATE NOCASE, id`,
	shapeArtist: `
		SELECT id, track_number, title FROM tracks
		WHERE artist = ?
		ORDER BY title COLLATE NOCASE, id`,
	shapeAlbum: `
		SELECT id, track_number, title FROM tracks
		WHERE album = ? COLLATE NOCASE
		ORDER BY track_number, title COLLATE NOCASE, id`,
	shapeArtistAlbum: `
		SELECT id, track_number, title FROM tracks
		WHERE artist = ? AND album = ?
		ORDER BY track_number, title COLLATE NOCASE, id`,
}

func (q queryShape) args(artist, album Filter) []any {
	switch q {
	case shapeArtist:
		return []any{artist.Name}
	case shapeAlbum:
		return []any{album.Name}
	case shapeArtistAlbum:
		return []any{artist.Name, album.Name}
	default:
		return nil
	}
}

// Titles returns the title list for an artist and album filter. Lists
// scoped to one album are in track-number order; otherwise by title.
func (s *Store) Titles(artist, album Filter) ([]Title, error) {
	shape := titleShape(artist, album)
	rows, err := s.db.Query(titleQueries[shape], shape.args(artist, album)...)
	if err != nil {
		return nil, queryErr("titles", err)
	}
	defer rows.Close()

	var titles []Title
	for rows.Next() {
		var t Title
		var trackNum sql.NullInt64
		if err := rows.Scan(&t.ID, &trackNum, &t.Title); err != nil {
			return nil, queryErr("titles", err)
		}
		t.TrackNumber = int(trackNum.Int64)
		titles = append(titles, t)
	}
	return titles, queryErr("titles", rows.Err())
}

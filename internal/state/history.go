package state

import (
	"database/sql"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
)

// getHistory returns the saved entries oldest first.
func getHistory(db *sql.DB) ([]browse.Position, error) {
	rows, err := db.Query(`
		SELECT artist, artist_all, album, album_index, title_index, track_id
		FROM history_entries
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []browse.Position
	for rows.Next() {
		var (
			p         browse.Position
			artist    string
			artistAll bool
			album     string
		)
		if err := rows.Scan(&artist, &artistAll, &album, &p.AlbumIndex, &p.TitleIndex, &p.TrackID); err != nil {
			return nil, err
		}
		p.Artist = catalog.Named(artist)
		if artistAll {
			p.Artist = catalog.Any
		}
		p.Album = catalog.Any
		if p.AlbumIndex > 0 {
			p.Album = catalog.Named(album)
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

func saveHistory(tx *sql.Tx, entries []browse.Position) error {
	if _, err := tx.Exec(`DELETE FROM history_entries`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history_entries (position, artist, artist_all, album, album_index, title_index, track_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range entries {
		_, err := stmt.Exec(i, p.Artist.Name, p.Artist.All, p.Album.Name, p.AlbumIndex, p.TitleIndex, p.TrackID)
		if err != nil {
			return err
		}
	}
	return nil
}

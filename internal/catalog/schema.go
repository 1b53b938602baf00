package catalog

import (
	"database/sql"
)

// AUTOINCREMENT keeps ids from being reused after deletes.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			artist TEXT NOT NULL DEFAULT '',
			album TEXT NOT NULL DEFAULT '',
			year INTEGER,
			track_number INTEGER,
			title TEXT NOT NULL DEFAULT '',
			path TEXT NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			play_count INTEGER NOT NULL DEFAULT 0,
			added_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks(artist);
		CREATE INDEX IF NOT EXISTS idx_tracks_artist_album ON tracks(artist, album);
	`)
	return err
}

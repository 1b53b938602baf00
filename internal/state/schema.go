package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session_schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS queue_tracks (
			position INTEGER PRIMARY KEY,
			track_id INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS history_entries (
			position INTEGER PRIMARY KEY,
			artist TEXT NOT NULL,
			artist_all INTEGER NOT NULL DEFAULT 0,
			album TEXT NOT NULL,
			album_index INTEGER NOT NULL,
			title_index INTEGER NOT NULL,
			track_id INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO session_schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

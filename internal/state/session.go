package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/shelf/internal/db"
	"github.com/llehouerou/shelf/internal/playback"
)

func getSession(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM session_state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		kv[key] = value
	}
	return kv, rows.Err()
}

func saveSession(sqlDB *sql.DB, snap playback.Snapshot) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if err := saveFlat(tx, snap.Flat()); err != nil {
			return err
		}
		if err := saveQueue(tx, snap.Queue); err != nil {
			return err
		}
		return saveHistory(tx, snap.History)
	})
}

func saveFlat(tx *sql.Tx, kv map[string]string) error {
	stmt, err := tx.Prepare(`
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for k, v := range kv {
		if _, err := stmt.Exec(k, v); err != nil {
			return err
		}
	}
	return nil
}

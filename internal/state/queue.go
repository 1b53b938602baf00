package state

import (
	"database/sql"
)

func getQueue(db *sql.DB) ([]int64, error) {
	rows, err := db.Query(`SELECT track_id FROM queue_tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func saveQueue(tx *sql.Tx, ids []int64) error {
	if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO queue_tracks (position, track_id) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id); err != nil {
			return err
		}
	}
	return nil
}

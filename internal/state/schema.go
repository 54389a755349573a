package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/arbor/internal/db"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS navigation_state (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				root TEXT NOT NULL,
				selected_path TEXT
			);
		`)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO schema_version (version) VALUES (?)
			ON CONFLICT DO NOTHING
		`, currentSchemaVersion)
		return err
	})
}

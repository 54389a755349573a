package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/arbor/internal/db"
)

// Navigation is the persisted navigation state.
type Navigation struct {
	Root         string // current tree root (absolute path)
	SelectedPath string // path of the selected row, if any
}

func getNavigation(db *sql.DB) (*Navigation, error) {
	row := db.QueryRow(`
		SELECT root, selected_path FROM navigation_state WHERE id = 1
	`)

	var nav Navigation
	var selected sql.NullString

	err := row.Scan(&nav.Root, &selected)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	nav.SelectedPath = dbutil.NullStringValue(selected)

	return &nav, nil
}

func saveNavigation(db *sql.DB, nav Navigation) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, root, selected_path)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			root = excluded.root,
			selected_path = excluded.selected_path
	`, nav.Root, nav.SelectedPath)

	return err
}

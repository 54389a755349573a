// Package state persists UI state in a small SQLite database under the
// XDG data directory. Only navigation state (last browsed directory and
// selection) is stored; expansion state is intentionally session-local.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "arbor"
	dbFileName   = "arbor.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. Saves are debounced so rapid
// navigation does not hammer the disk; Close flushes anything pending.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Navigation
}

func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return openAt(dbPath)
}

func openAt(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveNavigation(m.db, *pending)
	}

	return m.db.Close()
}

// SaveNavigation schedules a debounced write of the navigation state.
func (m *Manager) SaveNavigation(nav Navigation) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &nav

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveNavigation(m.db, *pending)
		}
	})
}

// GetNavigation returns the saved navigation state, or nil on first run.
func (m *Manager) GetNavigation() (*Navigation, error) {
	return getNavigation(m.db)
}

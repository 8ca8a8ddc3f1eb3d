// Package store persists the daemon's few durable preferences in SQLite.
// The only key written today is the last successfully configured TV.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const lastDeviceKey = "last_device"

// Store is a small key-value preferences table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preferences database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LastDevice returns the persisted IPv4 of the most recently configured TV.
// The bool is false when none has been recorded.
func (s *Store) LastDevice() (netip.Addr, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, lastDeviceKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return netip.Addr{}, false, nil
	}
	if err != nil {
		return netip.Addr{}, false, fmt.Errorf("read last device: %w", err)
	}

	addr, err := netip.ParseAddr(value)
	if err != nil {
		// A corrupt value is treated as absent, not fatal.
		return netip.Addr{}, false, nil
	}
	return addr, true, nil
}

// SetLastDevice records addr. Called only after a completed control-port
// configuration.
func (s *Store) SetLastDevice(addr netip.Addr) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastDeviceKey, addr.String(),
	)
	if err != nil {
		return fmt.Errorf("write last device: %w", err)
	}
	return nil
}

// ForgetLastDevice removes the persisted address.
func (s *Store) ForgetLastDevice() error {
	if _, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, lastDeviceKey); err != nil {
		return fmt.Errorf("forget last device: %w", err)
	}
	return nil
}

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one row per vehicle, the record stored as JSON under
// the vehicle name. The connection is opened on first use and dropped by
// Close, so the file can be swapped by a restore in between.
type SQLiteStore struct {
	path       string
	conn       *sql.DB
	unreadable unreadableSet
}

// NewSQLiteStore returns a store backed by the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database connection, if open.
func (s *SQLiteStore) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *SQLiteStore) db() (*sql.DB, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := initSchema(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	s.conn = conn
	return conn, nil
}

func initSchema(conn *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS vehicles (
		name TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := conn.Exec(schema); err != nil {
		return err
	}
	_, err := conn.Exec(`INSERT OR IGNORE INTO meta (key, value) VALUES ('schema_version', ?)`, strconv.Itoa(SchemaVersion))
	return err
}

// Load reads every vehicle row.
func (s *SQLiteStore) Load() (LoadResult, error) {
	res := LoadResult{Garage: Garage{}, Version: SchemaVersion}
	conn, err := s.db()
	if err != nil {
		return res, err
	}

	var version string
	if err := conn.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version); err == nil {
		if v, err := strconv.Atoi(version); err == nil {
			res.Version = v
		}
	}

	rows, err := conn.Query(`SELECT name, record FROM vehicles ORDER BY name`)
	if err != nil {
		return res, fmt.Errorf("querying vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	raw := map[string]json.RawMessage{}
	for rows.Next() {
		var name, record string
		if err := rows.Scan(&name, &record); err != nil {
			return res, fmt.Errorf("scanning vehicle: %w", err)
		}
		raw[name] = json.RawMessage(record)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterating vehicles: %w", err)
	}

	decodeRecords(raw, &res)
	s.unreadable.remember(res.Unreadable)
	return res, nil
}

// Save replaces all rows in one transaction. The database file is
// backed up first, like the JSON document.
func (s *SQLiteStore) Save(g Garage) error {
	records := make(map[string]string, len(g))
	for name, data := range s.unreadable.kept(g) {
		records[name] = string(data)
	}
	for name, v := range g {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding vehicle %q: %w", name, err)
		}
		records[name] = string(data)
	}

	// Release the handle so the copy sees a settled file.
	if err := s.Close(); err != nil {
		return err
	}
	if err := CreateBackup(s.path); err != nil {
		return fmt.Errorf("failed to back up %s: %w", s.path, err)
	}

	conn, err := s.db()
	if err != nil {
		return err
	}
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM vehicles`); err != nil {
		return fmt.Errorf("clearing vehicles: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := tx.Exec(`INSERT INTO vehicles (name, record, updated_at) VALUES (?, ?, ?)`, name, records[name], now); err != nil {
			return fmt.Errorf("inserting vehicle %q: %w", name, err)
		}
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, strconv.Itoa(SchemaVersion)); err != nil {
		return fmt.Errorf("updating schema version: %w", err)
	}
	return tx.Commit()
}

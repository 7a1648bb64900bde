package storage

import (
	"path/filepath"
	"testing"

	"github.com/xolan/fuel/internal/entry"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), DatabaseFile))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	s := newTestSQLiteStore(t)
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(res.Garage) != 0 {
		t.Errorf("Expected empty garage, got %d vehicles", len(res.Garage))
	}
	if res.Version != SchemaVersion {
		t.Errorf("Version = %d, expected %d", res.Version, SchemaVersion)
	}
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	s := newTestSQLiteStore(t)
	g := Garage{
		"Civic": {
			Price:   ptr(18500.5),
			Entries: []entry.RawEntry{entry.New(day(2024, 2, 1), 500, 30, 1.65)},
		},
		"Van": {Entries: []entry.RawEntry{}},
	}
	if err := s.Save(g); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(res.Garage) != 2 {
		t.Fatalf("Expected 2 vehicles, got %d", len(res.Garage))
	}
	civic := res.Garage["Civic"]
	if civic.Price == nil || *civic.Price != 18500.5 {
		t.Errorf("Civic price = %v, expected 18500.5", civic.Price)
	}
	if len(civic.Entries) != 1 || !civic.Entries[0].Equal(g["Civic"].Entries[0]) {
		t.Errorf("Civic entries = %+v", civic.Entries)
	}
}

func TestSQLiteStore_SaveReplacesRows(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(Garage{"A": {}, "B": {}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(Garage{"B": {}}); err != nil {
		t.Fatal(err)
	}
	res, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Garage["A"]; ok {
		t.Error("Expected A to be removed by the second save")
	}
	if !fileExists(GetBackupPath(s.Path(), 1)) {
		t.Error("Expected the second save to back up the database")
	}
}

func TestSQLiteStore_SaveKeepsUnreadableRecords(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(Garage{"Civic": {}}); err != nil {
		t.Fatal(err)
	}
	conn, err := s.db()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO vehicles (name, record, updated_at) VALUES ('Truck', 'garbage', '')`); err != nil {
		t.Fatal(err)
	}

	res, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Vehicle != "Truck" {
		t.Fatalf("Warnings = %+v, expected one for Truck", res.Warnings)
	}
	if err := s.Save(res.Garage); err != nil {
		t.Fatal(err)
	}

	conn, err = s.db()
	if err != nil {
		t.Fatal(err)
	}
	var record string
	if err := conn.QueryRow(`SELECT record FROM vehicles WHERE name = 'Truck'`).Scan(&record); err != nil {
		t.Fatalf("Truck row missing after save: %v", err)
	}
	if record != "garbage" {
		t.Errorf("Truck record = %q, expected it unchanged", record)
	}
}

func TestSQLiteStore_ReopenAfterClose(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(Garage{"Car": {}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	// Closing twice is fine.
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() returned error: %v", err)
	}

	again := NewSQLiteStore(s.Path())
	defer func() { _ = again.Close() }()
	res, err := again.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Garage["Car"]; !ok {
		t.Error("Expected Car to persist across connections")
	}
}

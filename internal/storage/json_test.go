package storage

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/fuel/internal/entry"
)

func ptr(f float64) *float64 { return &f }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), VehiclesFile))
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

func TestJSONStore_LoadEmptyFile(t *testing.T) {
	s := NewJSONStore(createTempStorage(t, "  \n"))
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(res.Garage) != 0 {
		t.Errorf("Expected empty garage, got %d vehicles", len(res.Garage))
	}
}

func TestJSONStore_SaveAndLoad(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), VehiclesFile))
	g := Garage{
		"Civic": {
			Price: ptr(20000),
			Entries: []entry.RawEntry{
				entry.New(day(2024, 1, 1), 1000, 40, 1.5),
				{Date: "2024-01-15", OdometerReading: "abc", Fuel: "38", Price: ""},
			},
			HasInvalidEntries: true,
		},
		"Bike": {},
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
	if civic.Price == nil || *civic.Price != 20000 {
		t.Errorf("Civic price = %v, expected 20000", civic.Price)
	}
	if len(civic.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(civic.Entries))
	}
	if !civic.Entries[0].Equal(g["Civic"].Entries[0]) {
		t.Errorf("entry 0 = %+v, expected %+v", civic.Entries[0], g["Civic"].Entries[0])
	}
	if civic.Entries[1].OdometerReading != "abc" {
		t.Errorf("text odometer = %q, expected %q", civic.Entries[1].OdometerReading, "abc")
	}
	if civic.Entries[1].Price != "" {
		t.Errorf("null price = %q, expected empty", civic.Entries[1].Price)
	}
	if !civic.HasInvalidEntries {
		t.Error("Expected HasInvalidEntries to round-trip")
	}
	if res.Garage["Bike"].Price != nil {
		t.Error("Expected Bike price to stay nil")
	}
}

func TestJSONStore_SaveWritesVersionedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), VehiclesFile)
	s := NewJSONStore(path)
	if err := s.Save(Garage{"Car": {}}); err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(readFileContent(t, path)), &doc); err != nil {
		t.Fatalf("saved file is not JSON: %v", err)
	}
	if string(doc["version"]) != "2" {
		t.Errorf("version = %s, expected 2", doc["version"])
	}
	content := readFileContent(t, path)
	if !strings.Contains(content, `"entries": []`) {
		t.Errorf("Expected empty entries to be written as [], got:\n%s", content)
	}
	if fileExists(path + ".tmp") {
		t.Error("Expected temporary file to be renamed away")
	}
}

func TestJSONStore_SaveCreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), VehiclesFile)
	s := NewJSONStore(path)
	if err := s.Save(Garage{"First": {}}); err != nil {
		t.Fatal(err)
	}
	if fileExists(GetBackupPath(path, 1)) {
		t.Error("Expected no backup on the first save")
	}
	if err := s.Save(Garage{"Second": {}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readFileContent(t, GetBackupPath(path, 1)), "First") {
		t.Error("Expected backup 1 to hold the previous document")
	}
}

func TestJSONStore_LegacyMigration(t *testing.T) {
	legacy := `{
  "Old Car": [
    {"date": "2024-01-01", "odometerReading": 1000, "fuel": 40, "price": 1.5}
  ],
  "New Car": {"price": 15000, "entries": []}
}`
	s := NewJSONStore(createTempStorage(t, legacy))
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if res.Version != 1 {
		t.Errorf("Version = %d, expected 1", res.Version)
	}
	if len(res.Migrated) != 1 || res.Migrated[0] != "Old Car" {
		t.Errorf("Migrated = %v, expected [Old Car]", res.Migrated)
	}
	old := res.Garage["Old Car"]
	if old.Price != nil {
		t.Errorf("migrated price = %v, expected nil", *old.Price)
	}
	if len(old.Entries) != 1 || old.Entries[0].OdometerReading != "1000" {
		t.Errorf("migrated entries = %+v", old.Entries)
	}
	if p := res.Garage["New Car"].Price; p == nil || *p != 15000 {
		t.Errorf("New Car price = %v, expected 15000", p)
	}
}

func TestJSONStore_LegacyVehicleNamedVersion(t *testing.T) {
	legacy := `{"version": [], "vehicles": {"price": null, "entries": []}}`
	s := NewJSONStore(createTempStorage(t, legacy))
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if res.Version != 1 {
		t.Errorf("Version = %d, expected 1", res.Version)
	}
	if _, ok := res.Garage["version"]; !ok {
		t.Error("Expected a vehicle named \"version\"")
	}
	if _, ok := res.Garage["vehicles"]; !ok {
		t.Error("Expected a vehicle named \"vehicles\"")
	}
}

func TestJSONStore_RejectsNewerVersion(t *testing.T) {
	s := NewJSONStore(createTempStorage(t, `{"version": 99, "vehicles": {}}`))
	_, err := s.Load()
	if err == nil {
		t.Fatal("Expected error for a newer schema version")
	}
	if !strings.Contains(err.Error(), "newer version") {
		t.Errorf("error = %q, expected it to mention a newer version", err.Error())
	}
}

func TestJSONStore_MalformedRecordWarns(t *testing.T) {
	doc := `{"version": 2, "vehicles": {"Good": {"price": null, "entries": []}, "Bad": 42}}`
	s := NewJSONStore(createTempStorage(t, doc))
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if _, ok := res.Garage["Good"]; !ok {
		t.Error("Expected the good record to load")
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Vehicle != "Bad" {
		t.Fatalf("Warnings = %+v, expected one for Bad", res.Warnings)
	}
	if res.Warnings[0].Content != "42" {
		t.Errorf("warning content = %q, expected %q", res.Warnings[0].Content, "42")
	}
}

func TestJSONStore_SaveKeepsUnreadableRecords(t *testing.T) {
	doc := `{"Civic": [{"date": "2024-01-01", "odometerReading": "1000", "fuel": "40", "price": "1.5"}], "Truck": "not a record"}`
	path := createTempStorage(t, doc)
	s := NewJSONStore(path)
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if string(res.Unreadable["Truck"]) != `"not a record"` {
		t.Fatalf("Unreadable = %v, expected the raw Truck record", res.Unreadable)
	}

	if err := s.Save(res.Garage); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	var saved struct {
		Vehicles map[string]json.RawMessage `json:"vehicles"`
	}
	if err := json.Unmarshal([]byte(readFileContent(t, path)), &saved); err != nil {
		t.Fatalf("saved document is not JSON: %v", err)
	}
	if string(saved.Vehicles["Truck"]) != `"not a record"` {
		t.Errorf("Truck = %s, expected the unreadable record to be written back", saved.Vehicles["Truck"])
	}
	if _, ok := saved.Vehicles["Civic"]; !ok {
		t.Error("Expected Civic to be saved")
	}
}

func TestJSONStore_SaveReplacesUnreadableRecord(t *testing.T) {
	s := NewJSONStore(createTempStorage(t, `{"version": 2, "vehicles": {"Truck": 42}}`))
	if _, err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(Garage{"Truck": {Price: ptr(1000)}}); err != nil {
		t.Fatal(err)
	}
	res, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %+v, expected the new Truck record to replace the broken one", res.Warnings)
	}
	if v := res.Garage["Truck"]; v.Price == nil || *v.Price != 1000 {
		t.Errorf("Truck = %+v", v)
	}
}

func TestJSONStore_InvalidJSON(t *testing.T) {
	s := NewJSONStore(createTempStorage(t, "{not json"))
	if _, err := s.Load(); err == nil {
		t.Error("Expected error for a corrupt document")
	}
}

func TestValidateStorage(t *testing.T) {
	legacy := `{
  "Car": [
    {"date": "2024-01-01", "odometerReading": 1000, "fuel": 40, "price": 1.5},
    {"date": "2024-01-10", "odometerReading": "x", "fuel": 40, "price": 1.5}
  ],
  "Broken": "nope"
}`
	s := NewJSONStore(createTempStorage(t, legacy))
	health, err := ValidateStorage(s)
	if err != nil {
		t.Fatalf("ValidateStorage() returned error: %v", err)
	}
	if health.Healthy() {
		t.Error("Expected storage to need attention")
	}
	if health.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, expected 2", health.TotalEntries)
	}
	if health.InvalidEntries != 1 {
		t.Errorf("InvalidEntries = %d, expected 1", health.InvalidEntries)
	}
	if len(health.Vehicles) != 1 || !health.Vehicles[0].Migrated {
		t.Errorf("Vehicles = %+v, expected one migrated vehicle", health.Vehicles)
	}
	if len(health.Warnings) != 1 {
		t.Errorf("Warnings = %d, expected 1", len(health.Warnings))
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(BackendJSON, filepath.Join(dir, VehiclesFile))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Errorf("Open(json) = %T, expected *JSONStore", s)
	}
	s, err = Open(BackendSQLite, filepath.Join(dir, DatabaseFile))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Open(sqlite) = %T, expected *SQLiteStore", s)
	}
	if _, err := Open("mongo", "x"); err == nil {
		t.Error("Expected error for an unknown backend")
	}
}

package service

import (
	"path/filepath"
	"testing"

	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/entry"
)

// newTestServices builds services over a temporary directory.
func newTestServices(t *testing.T) *Services {
	t.Helper()
	return newTestServicesWithConfig(t, config.DefaultConfig())
}

func newTestServicesWithConfig(t *testing.T, cfg config.Config) *Services {
	t.Helper()
	tmpDir := t.TempDir()
	storageFile := "vehicles.json"
	if cfg.StorageBackend == config.BackendSQLite {
		storageFile = "fuel.db"
	}
	paths := Paths{
		Storage: filepath.Join(tmpDir, storageFile),
		State:   filepath.Join(tmpDir, "state.json"),
		Config:  filepath.Join(tmpDir, "config.toml"),
	}
	svc, err := NewServicesWithPaths(paths, cfg, nil)
	if err != nil {
		t.Fatalf("NewServicesWithPaths() returned error: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func mustAddVehicle(t *testing.T, svc *Services, name string, price *float64) {
	t.Helper()
	if err := svc.Vehicle.Add(name, price); err != nil {
		t.Fatalf("Add(%q) returned error: %v", name, err)
	}
}

func mustAddEntry(t *testing.T, svc *Services, vehicle, date, odo, fuel, price string) {
	t.Helper()
	in := entry.Input{Date: date, Odometer: odo, Fuel: fuel, Price: price}
	if _, err := svc.Entry.Add(vehicle, in); err != nil {
		t.Fatalf("Entry.Add(%+v) returned error: %v", in, err)
	}
}

func ptr(f float64) *float64 { return &f }

func TestNewServicesWithPaths(t *testing.T) {
	services := newTestServices(t)

	if services.Vehicle == nil {
		t.Error("expected non-nil Vehicle service")
	}
	if services.Entry == nil {
		t.Error("expected non-nil Entry service")
	}
	if services.Stats == nil {
		t.Error("expected non-nil Stats service")
	}
	if services.Transfer == nil {
		t.Error("expected non-nil Transfer service")
	}
	if services.Units == nil {
		t.Error("expected non-nil Units service")
	}
	if services.Storage == nil {
		t.Error("expected non-nil Storage service")
	}
	if services.Session == nil {
		t.Error("expected non-nil Session service")
	}
	if services.Config == nil {
		t.Error("expected non-nil Config service")
	}
}

func TestNewServicesWithPaths_UnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StorageBackend = "tape"
	_, err := NewServicesWithPaths(Paths{Storage: filepath.Join(t.TempDir(), "x")}, cfg, nil)
	if err == nil {
		t.Error("expected error for unknown storage backend")
	}
}

func TestServices_SQLiteBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StorageBackend = config.BackendSQLite
	svc := newTestServicesWithConfig(t, cfg)

	mustAddVehicle(t, svc, "Civic", nil)
	mustAddEntry(t, svc, "Civic", "2024-01-01", "1000", "40", "1.5")

	raws, err := svc.Entry.Raw("Civic")
	if err != nil {
		t.Fatalf("Raw() returned error: %v", err)
	}
	if len(raws) != 1 {
		t.Errorf("expected 1 entry, got %d", len(raws))
	}
}

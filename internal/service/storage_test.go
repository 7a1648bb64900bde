package service

import (
	"os"
	"testing"
)

func TestStorageService_Validate(t *testing.T) {
	svc := newTestServices(t)
	mustAddVehicle(t, svc, "Civic", nil)
	mustAddEntry(t, svc, "Civic", "2024-01-01", "1000", "40", "1.5")
	mustAddEntry(t, svc, "Civic", "2024-01-10", "900", "40", "1.5")

	health, err := svc.Storage.Validate()
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if health.TotalEntries != 2 || health.InvalidEntries != 1 {
		t.Errorf("expected 2 entries with 1 invalid, got %+v", health)
	}
	if health.Healthy() {
		t.Error("expected unhealthy storage with an invalid entry")
	}
}

func TestStorageService_Validate_DoesNotMigrate(t *testing.T) {
	svc := newTestServices(t)
	legacy := `{"Old": []}`
	if err := os.WriteFile(svc.Storage.Path(), []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}
	health, err := svc.Storage.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if len(health.Migrated) != 1 {
		t.Errorf("expected the legacy record to be reported, got %v", health.Migrated)
	}
	content, _ := os.ReadFile(svc.Storage.Path())
	if string(content) != legacy {
		t.Error("expected Validate to leave the file unchanged")
	}
}

func TestStorageService_BackupAndRestore(t *testing.T) {
	svc := newTestServices(t)
	mustAddVehicle(t, svc, "Civic", nil)
	mustAddVehicle(t, svc, "Van", nil)

	backups, err := svc.Storage.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup after two saves, got %d", len(backups))
	}

	if err := svc.Storage.Restore(1); err != nil {
		t.Fatalf("Restore() returned error: %v", err)
	}
	list, err := svc.Vehicle.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "Civic" {
		t.Errorf("expected only Civic after restoring, got %+v", list)
	}

	if err := svc.Storage.Restore(3); err == nil {
		t.Error("expected error for a missing backup")
	}
}

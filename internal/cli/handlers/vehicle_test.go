package handlers

import (
	"strings"
	"testing"

	"github.com/xolan/fuel/internal/service"
)

func TestAddVehicle(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)

	AddVehicle(deps, "Civic", ptr(20000))

	expectOK(t, exitCode, stderr)
	if !strings.Contains(stdout.String(), "Added vehicle: Civic (purchase price $20,000.00)") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Now using: Civic") {
		t.Errorf("expected the first vehicle to become current, got %q", stdout.String())
	}
}

func TestAddVehicle_SecondIsNotSelected(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)

	AddVehicle(deps, "Van", nil)

	if strings.Contains(stdout.String(), "Now using") {
		t.Errorf("expected selection to stay on Civic, got %q", stdout.String())
	}
}

func TestAddVehicle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		price *float64
		want  string
	}{
		{"empty name", "  ", nil, "Vehicle name cannot be empty"},
		{"duplicate", "Civic", nil, "already exists"},
		{"bad price", "Van", ptr(-5), "positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, stderr, exitCode := setupTestDeps(t)
			mustAddVehicle(t, deps, "Civic", nil)

			AddVehicle(deps, tt.input, tt.price)

			expectExit(t, exitCode, stderr, tt.want)
		})
	}
}

func TestEditVehicle_Rename(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)
	newName := "Accord"

	EditVehicle(deps, "Civic", service.VehicleUpdate{Name: &newName, Price: ptr(15000)})

	expectOK(t, exitCode, stderr)
	if !strings.Contains(stdout.String(), "Renamed vehicle: Civic -> Accord") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "$15,000.00") {
		t.Errorf("expected new price in output, got %q", stdout.String())
	}
	if got := deps.Services.Vehicle.Current(); got != "Accord" {
		t.Errorf("expected selection to follow the rename, got %q", got)
	}
}

func TestEditVehicle_NoChanges(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)

	EditVehicle(deps, "Civic", service.VehicleUpdate{})

	expectExit(t, exitCode, stderr, "At least one flag")
}

func TestEditVehicle_ClearPrice(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", ptr(20000))

	EditVehicle(deps, "Civic", service.VehicleUpdate{ClearPrice: true})

	if !strings.Contains(stdout.String(), "purchase price -") {
		t.Errorf("expected cleared price, got %q", stdout.String())
	}
}

func TestDeleteVehicle(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)
	mustAddEntry(t, deps, "Civic", "2024-01-01", "1000", "40", "1.5")
	deps.Stdin = strings.NewReader("y\n")

	DeleteVehicle(deps, "Civic", false)

	expectOK(t, exitCode, stderr)
	if !strings.Contains(stdout.String(), "Vehicle to delete: Civic (1 entry)") {
		t.Errorf("expected vehicle preview, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Deleted vehicle: Civic") {
		t.Errorf("expected deletion, got %q", stdout.String())
	}
	if deps.Services.Vehicle.Current() != "" {
		t.Error("expected selection to be cleared")
	}
}

func TestDeleteVehicle_Cancelled(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)

	DeleteVehicle(deps, "Civic", false)

	if !strings.Contains(stdout.String(), "Deletion cancelled") {
		t.Errorf("expected cancellation, got %q", stdout.String())
	}
	if _, err := deps.Services.Vehicle.Get("Civic"); err != nil {
		t.Error("expected vehicle to remain")
	}
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	DeleteVehicle(deps, "Ghost", true)

	expectExit(t, exitCode, stderr, "Vehicle not found")
}

func TestListVehicles(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	addExampleLog(t, deps, "Civic", ptr(20000))
	mustAddVehicle(t, deps, "Van", nil)

	ListVehicles(deps)

	expectOK(t, exitCode, stderr)
	out := stdout.String()
	for _, want := range []string{"Vehicles (2):", "* Civic", "4 entries", "$20,000.00", "6 days ago", "  Van", "never"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestListVehicles_Empty(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	ListVehicles(deps)

	if !strings.Contains(stdout.String(), "No vehicles yet") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}

func TestListVehicles_StorageError(t *testing.T) {
	deps, _, stderr, exitCode := setupBrokenDeps(t)

	ListVehicles(deps)

	expectExit(t, exitCode, stderr, "Failed to load vehicles")
}

func TestUseVehicle(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	mustAddVehicle(t, deps, "Civic", nil)
	mustAddVehicle(t, deps, "Van", nil)

	UseVehicle(deps, "Van")

	if *exitCode != 0 || !strings.Contains(stdout.String(), "Now using: Van") {
		t.Errorf("unexpected result: %q", stdout.String())
	}
	if deps.Services.Vehicle.Current() != "Van" {
		t.Error("expected Van to be current")
	}

	UseVehicle(deps, "Ghost")
	if *exitCode != 1 {
		t.Error("expected failure for an unknown vehicle")
	}
}

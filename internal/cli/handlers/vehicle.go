package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/service"
)

func failVehicle(deps *cli.Deps, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyName):
		deps.Fail("Vehicle name cannot be empty", nil, "Usage: fuel vehicle add <name> [--price 20000]")
	case errors.Is(err, service.ErrVehicleExists):
		deps.Fail("A vehicle with this name already exists", err, hintListVehicles)
	case errors.Is(err, service.ErrVehicleNotFound):
		deps.Fail("Vehicle not found", err, hintListVehicles)
	case errors.Is(err, service.ErrInvalidPrice):
		deps.Fail("Purchase price must be a positive number", nil, "")
	case errors.Is(err, service.ErrNoChangesSpecified):
		deps.Fail("At least one flag (--name, --price or --clear-price) is required", nil,
			"Usage: fuel vehicle edit <name> --name 'New name'")
	default:
		deps.Fail("Failed to update vehicles", err, "")
	}
}

// AddVehicle creates a vehicle with an optional purchase price.
func AddVehicle(deps *cli.Deps, name string, price *float64) {
	if err := deps.Services.Vehicle.Add(name, price); err != nil {
		failVehicle(deps, err)
		return
	}
	name = strings.TrimSpace(name)
	currency := deps.Services.Config.Get().CurrencySymbol
	if price != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Added vehicle: %s (purchase price %s)\n", name, cli.FormatMoney(*price, currency))
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Added vehicle: %s\n", name)
	}
	if deps.Services.Vehicle.Current() == name {
		_, _ = fmt.Fprintf(deps.Stdout, "Now using: %s\n", name)
	}
}

// EditVehicle renames a vehicle or changes its purchase price.
func EditVehicle(deps *cli.Deps, name string, upd service.VehicleUpdate) {
	newName, err := deps.Services.Vehicle.Edit(name, upd)
	if err != nil {
		failVehicle(deps, err)
		return
	}
	if newName != name {
		_, _ = fmt.Fprintf(deps.Stdout, "Renamed vehicle: %s -> %s\n", name, newName)
	}
	v, err := deps.Services.Vehicle.Get(newName)
	if err != nil {
		failVehicle(deps, err)
		return
	}
	currency := deps.Services.Config.Get().CurrencySymbol
	_, _ = fmt.Fprintf(deps.Stdout, "Updated vehicle: %s (purchase price %s)\n", newName, cli.FormatPrice(v.Price, currency))
}

// DeleteVehicle deletes a vehicle and its log with optional confirmation
func DeleteVehicle(deps *cli.Deps, name string, skipConfirm bool) {
	v, err := deps.Services.Vehicle.Get(name)
	if err != nil {
		failVehicle(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Vehicle to delete: %s (%s)\n", name, cli.Count(len(v.Entries), "entry"))
	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin, "Delete this vehicle and its fuel log?") {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	if err := deps.Services.Vehicle.Delete(name); err != nil {
		failVehicle(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted vehicle: %s\n", name)
}

// ListVehicles prints every vehicle, marking the current one.
func ListVehicles(deps *cli.Deps) {
	list, err := deps.Services.Vehicle.List()
	if err != nil {
		deps.Fail("Failed to load vehicles", err, "Check the storage file with 'fuel validate'")
		return
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No vehicles yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'fuel vehicle add <name>'")
		return
	}

	width := 0
	for _, v := range list {
		width = max(width, len(v.Name))
	}
	currency := deps.Services.Config.Get().CurrencySymbol
	now := deps.Now()

	_, _ = fmt.Fprintf(deps.Stdout, "Vehicles (%d):\n", len(list))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	for _, v := range list {
		marker := " "
		if v.Current {
			marker = "*"
		}
		line := fmt.Sprintf("%s %-*s  %-12s  price %-12s  last fill-up %s",
			marker, width, v.Name,
			cli.Count(v.Entries, "entry"),
			cli.FormatPrice(v.Price, currency),
			cli.FormatLastFillUp(v.LastFillUp, now))
		if v.InvalidEntries > 0 {
			line += fmt.Sprintf("  (%d invalid)", v.InvalidEntries)
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
}

// UseVehicle makes name the current vehicle.
func UseVehicle(deps *cli.Deps, name string) {
	if err := deps.Services.Vehicle.Use(name); err != nil {
		failVehicle(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Now using: %s\n", name)
}

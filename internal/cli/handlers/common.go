// Package handlers implements the fuel commands on top of the service
// layer. Every handler prints to the injected streams and exits through
// deps.Exit on failure.
package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/storage"
)

const (
	hintAddVehicle   = "Add a vehicle with 'fuel vehicle add <name>' or pick one with 'fuel vehicle use <name>'"
	hintListVehicles = "List vehicles with 'fuel vehicle list'"
)

// resolveVehicle returns name, or the current vehicle when name is empty.
// It reports the failure and returns false when there is none.
func resolveVehicle(deps *cli.Deps, name string) (string, bool) {
	v, err := deps.Services.Vehicle.Resolve(name)
	if err == nil {
		return v, true
	}
	switch {
	case errors.Is(err, service.ErrNoVehicleSelected):
		deps.Fail("No vehicle selected", nil, hintAddVehicle)
	case errors.Is(err, service.ErrVehicleNotFound):
		deps.Fail("Vehicle not found", err, hintListVehicles)
	default:
		deps.Fail("Failed to load vehicles", err, "Check the storage file with 'fuel validate'")
	}
	return "", false
}

// printWarnings reports stored records that couldn't be read.
func printWarnings(deps *cli.Deps, warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d unreadable %s in storage file:\n", len(warnings), cli.Pluralize("record", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatParseWarning(w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// promptConfirmation asks a yes/no question; anything but y/Y is no.
func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}

func printNotices(w io.Writer, notices []string) {
	for _, n := range notices {
		_, _ = fmt.Fprintln(w, n)
	}
}

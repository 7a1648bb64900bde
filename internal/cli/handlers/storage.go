package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/storage"
)

// ValidateStorage prints the health of the stored data.
func ValidateStorage(deps *cli.Deps) {
	health, err := deps.Services.Storage.Validate()
	if err != nil {
		deps.Fail("Failed to read storage", err, fmt.Sprintf("Restore a backup with 'fuel restore' if %s is damaged", health.Path))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Storage file:   %s\n", health.Path)
	_, _ = fmt.Fprintf(deps.Stdout, "Format version: %d\n", health.Version)
	_, _ = fmt.Fprintf(deps.Stdout, "Vehicles:       %d\n", len(health.Vehicles))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:        %d\n", health.TotalEntries)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	for _, v := range health.Vehicles {
		line := fmt.Sprintf("  %s: %s", v.Name, cli.Count(v.Entries, "entry"))
		if v.InvalidEntries > 0 {
			line += fmt.Sprintf(", %d invalid", v.InvalidEntries)
		}
		if v.Migrated {
			line += " (legacy layout)"
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}

	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Healthy")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Status: Issues found")
	if health.InvalidEntries > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s with invalid data are excluded from statistics\n", cli.Count(health.InvalidEntries, "entry"))
	}
	if len(health.Migrated) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s in the legacy layout will be upgraded on the next write\n", cli.Count(len(health.Migrated), "record"))
	}
	printWarnings(deps, health.Warnings)
}

// RestoreBackup replaces the storage file with a backup. arg selects the
// backup number and defaults to the most recent.
func RestoreBackup(deps *cli.Deps, arg string, skipConfirm bool) {
	backups, err := deps.Services.Storage.ListBackups()
	if err != nil {
		deps.Fail("Failed to list backups", err, "")
		return
	}
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	now := deps.Now()
	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, b := range backups {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatBackup(b, now))
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	n := 1
	if arg != "" {
		num, err := strconv.Atoi(arg)
		if err != nil {
			deps.Fail(fmt.Sprintf("Invalid backup number '%s'", arg), nil, "")
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			deps.Fail(fmt.Sprintf("Backup number must be between 1 and %d (got %d)", storage.MaxBackupCount, num), nil, "")
			return
		}
		n = num
	}

	found := false
	for _, b := range backups {
		if b.Number == n {
			found = true
			break
		}
	}
	if !found {
		deps.Fail(fmt.Sprintf("Backup %d does not exist", n), nil, "")
		return
	}

	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin, fmt.Sprintf("Replace current data with backup %d?", n)) {
			_, _ = fmt.Fprintln(deps.Stdout, "Restore cancelled")
			return
		}
	}

	if err := deps.Services.Storage.Restore(n); err != nil {
		deps.Fail("Failed to restore backup", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", n)
}

// Package cli provides the CLI presentation layer for the fuel application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/storage"
	"github.com/xolan/fuel/internal/units"
)

// Missing is printed for values that can't be derived.
const Missing = "-"

// FormatNumber formats v with thousands separators and exactly places
// decimals.
// Example: FormatNumber(1234.5, 2) = "1,234.50"
func FormatNumber(v float64, places int) string {
	s := humanize.CommafWithDigits(units.Round(v, int32(places)), places)
	if places <= 0 {
		return s
	}
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return s + "." + strings.Repeat("0", places)
	}
	return s + strings.Repeat("0", places-(len(s)-i-1))
}

// FormatOptional formats a derived value, or "-" when it is absent.
func FormatOptional(v *float64, places int) string {
	if v == nil {
		return Missing
	}
	return FormatNumber(*v, places)
}

// FormatMoney formats an amount with the currency symbol.
func FormatMoney(v float64, currency string) string {
	return currency + FormatNumber(v, 2)
}

// FormatPrice formats a purchase price, or "-" when none is set.
func FormatPrice(price *float64, currency string) string {
	if price == nil {
		return Missing
	}
	return FormatMoney(*price, currency)
}

// FormatMarker returns the log marker for an entry: "*" for the baseline
// and "!" for an invalid entry.
func FormatMarker(e entry.Processed) string {
	switch {
	case e.IsInvalid:
		return "!"
	case e.IsFirst:
		return "*"
	}
	return " "
}

// FormatLastFillUp describes a fill-up date relative to now.
// Examples: "never", "today", "3 days ago"
func FormatLastFillUp(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	if t.Format(entry.DateLayout) == now.Format(entry.DateLayout) {
		return "today"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatParseWarning formats a ParseWarning into a human-readable string
func FormatParseWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Vehicle %q: %s (error: %s)", warning.Vehicle, content, warning.Error)
}

// FormatBackup formats a backup line for the restore listing.
func FormatBackup(b storage.BackupInfo, now time.Time) string {
	return fmt.Sprintf("  [%d] %s (%s, %s)", b.Number, b.ModTime.Format("2006-01-02 15:04"),
		humanize.RelTime(b.ModTime, now, "ago", "from now"), humanize.Bytes(uint64(b.Size)))
}

// SortIndicator marks the sorted column of the log table.
func SortIndicator(cfg entry.SortConfig, key entry.SortKey) string {
	if cfg.Key != key {
		return ""
	}
	if cfg.Direction == entry.SortDescending {
		return " v"
	}
	return " ^"
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

// Count formats n followed by the matching form of word.
// Example: Count(1200, "entry") = "1,200 entries"
func Count(n int, word string) string {
	return humanize.Comma(int64(n)) + " " + Pluralize(word, n)
}

// Bar renders value as a row of blocks scaled against max.
func Bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("#", n)
}

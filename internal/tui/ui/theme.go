package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"
	"github.com/xolan/fuel/internal/config"
)

// DefaultTheme is used when the configured theme is empty or unknown.
const DefaultTheme = config.DefaultTheme

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme, or at
// DefaultTheme when that is empty or unknown.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	ids := registry.TintIDs()
	slices.Sort(ids)
	return &ThemeProvider{registry: registry, ids: ids}
}

// SetTheme sets the current theme by name.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the ID of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns every theme ID in alphabetical order.
func (tp *ThemeProvider) AvailableThemes() []string {
	return slices.Clone(tp.ids)
}

// Index returns the position of name in AvailableThemes, or -1.
func (tp *ThemeProvider) Index(name string) int {
	i, found := slices.BinarySearch(tp.ids, name)
	if !found {
		return -1
	}
	return i
}

// Styles returns a Styles struct configured for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}

package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// VehicleChangedMsg is broadcast to all views when another vehicle is
// selected.
type VehicleChangedMsg struct {
	Name string
}

// DataChangedMsg is sent after a view modified the stored log, so the
// other views reload.
type DataChangedMsg struct{}

package views

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/tui/ui"
	"github.com/xolan/fuel/internal/units"
)

var fillUps = []entry.Input{
	{Date: "2024-01-01", Odometer: "1000", Fuel: "40", Price: "1.50"},
	{Date: "2024-01-15", Odometer: "1400", Fuel: "38", Price: "1.55"},
	{Date: "2024-02-01", Odometer: "1800", Fuel: "41", Price: "1.60"},
	{Date: "2024-02-15", Odometer: "2250", Fuel: "42", Price: "1.45"},
}

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	services, err := service.NewServicesWithPaths(service.Paths{
		Storage: filepath.Join(tmpDir, "vehicles.json"),
		State:   filepath.Join(tmpDir, "state.json"),
		Config:  filepath.Join(tmpDir, "config.toml"),
	}, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	t.Cleanup(func() { _ = services.Close() })
	return services
}

// setupTestServicesWithEntries adds Civic with a purchase price and the
// first n fill-ups.
func setupTestServicesWithEntries(t *testing.T, n int) *service.Services {
	t.Helper()
	services := setupTestServices(t)
	price := 20000.0
	if err := services.Vehicle.Add("Civic", &price); err != nil {
		t.Fatalf("failed to add vehicle: %v", err)
	}
	for _, in := range fillUps[:n] {
		if _, err := services.Entry.Add("Civic", in); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}
	return services
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd and returns its message, or nil.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func newLog(t *testing.T, services *service.Services, vehicle string) LogModel {
	t.Helper()
	m := NewLogModel(services, vehicle, ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(120, 40)
	if vehicle != "" {
		m, _ = m.Update(runCmd(t, m.Init()))
	}
	return m
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, delta, n, want int
	}{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, -1, 3, 0},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.i, tt.delta, tt.n); got != tt.want {
			t.Errorf("wrapIndex(%d, %d, %d) = %d, want %d", tt.i, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestRenderLogTable(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	result, err := services.Entry.Log("Civic", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := RenderLogTable(result.Entries, result.Sort, ui.DefaultStyles(), LogTableOptions{
		Units:    units.Metric,
		Currency: "$",
		Cursor:   -1,
	})

	for _, want := range []string{"Date ^", "Odometer (km)", "Fuel (L)", "Price ($)", "[1]", "[3]", "2024-01-15", "400.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("expected header and 3 rows, got %d lines", lines)
	}
}

func TestRenderLogTable_Window(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	result, _ := services.Entry.Log("Civic", nil)

	out := RenderLogTable(result.Entries, result.Sort, ui.DefaultStyles(), LogTableOptions{
		Units:  units.Metric,
		Offset: 1,
		Rows:   2,
	})
	if strings.Contains(out, "[1]") || strings.Contains(out, "[4]") {
		t.Errorf("expected only rows 2 and 3, got:\n%s", out)
	}
	if !strings.Contains(out, "[2]") || !strings.Contains(out, "[3]") {
		t.Errorf("expected rows 2 and 3, got:\n%s", out)
	}
}

func TestRenderLogTable_Empty(t *testing.T) {
	if out := RenderLogTable(nil, entry.DefaultSort(), ui.DefaultStyles(), LogTableOptions{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestLogModel_NoVehicle(t *testing.T) {
	services := setupTestServices(t)
	m := NewLogModel(services, "", ui.DefaultStyles(), ui.DefaultKeyMap())

	if cmd := m.Init(); cmd != nil {
		t.Error("expected no load command without a vehicle")
	}
	if !strings.Contains(m.View(), noVehicleText) {
		t.Errorf("expected no vehicle text, got:\n%s", m.View())
	}

	m, _ = m.Update(keyRune('n'))
	if m.IsInputMode() {
		t.Error("expected add form to stay closed without a vehicle")
	}
}

func TestLogModel_Loading(t *testing.T) {
	services := setupTestServicesWithEntries(t, 1)
	m := NewLogModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	if !strings.Contains(m.View(), "Loading...") {
		t.Errorf("expected loading text, got:\n%s", m.View())
	}
}

func TestLogModel_View(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := newLog(t, services, "Civic")

	view := m.View()
	for _, want := range []string{"Fuel log for Civic", "Total: 4 entries", "2024-02-15"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestLogModel_View_Empty(t *testing.T) {
	services := setupTestServicesWithEntries(t, 0)
	m := newLog(t, services, "Civic")
	if !strings.Contains(m.View(), "No entries yet") {
		t.Errorf("expected empty log text, got:\n%s", m.View())
	}
}

func TestLogModel_Navigation(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}
	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune('j'))
	if m.cursor != 2 {
		t.Errorf("expected cursor to stop at 2, got %d", m.cursor)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}
}

func TestLogModel_SortKeys(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	m := newLog(t, services, "Civic")

	var cmd tea.Cmd
	m, cmd = m.Update(keyRune('s'))
	m, _ = m.Update(runCmd(t, cmd))

	want := entry.SortConfig{Key: entry.SortByOdometer, Direction: entry.SortAscending}
	if m.result.Sort != want {
		t.Errorf("expected sort %+v, got %+v", want, m.result.Sort)
	}
	state, err := services.Session.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Sort != want {
		t.Errorf("expected saved sort %+v, got %+v", want, state.Sort)
	}

	m, cmd = m.Update(keyRune('S'))
	m, _ = m.Update(runCmd(t, cmd))
	if m.result.Sort.Direction != entry.SortDescending {
		t.Errorf("expected descending after reverse, got %s", m.result.Sort.Direction)
	}
	if m.result.Entries[0].Raw.OdometerReading != "1800" {
		t.Errorf("expected highest odometer first, got %s", m.result.Entries[0].Raw.OdometerReading)
	}
}

func TestLogModel_AddEntry(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := newLog(t, services, "Civic")
	m.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	m, _ = m.Update(keyRune('n'))
	if !m.IsInputMode() {
		t.Fatal("expected add form to open")
	}
	if got := m.inputs[fieldDate].Value(); got != "2024-03-01" {
		t.Errorf("expected date prefilled with today, got %q", got)
	}
	if m.focused != fieldOdometer {
		t.Errorf("expected odometer focused, got %d", m.focused)
	}
	if !strings.Contains(m.View(), "New fill-up for Civic") {
		t.Errorf("expected add form view, got:\n%s", m.View())
	}

	m.inputs[fieldOdometer].SetValue("2700")
	m.inputs[fieldFuel].SetValue("40")
	m.inputs[fieldPrice].SetValue("1.50")

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(runCmd(t, cmd))

	if m.IsInputMode() {
		t.Error("expected add form to close after saving")
	}
	if got := len(m.result.Entries); got != 5 {
		t.Errorf("expected 5 entries, got %d", got)
	}
	if m.status != "Added fill-up on 2024-03-01" {
		t.Errorf("unexpected status %q", m.status)
	}
	if _, ok := runCmd(t, cmd).(ui.DataChangedMsg); !ok {
		t.Error("expected DataChangedMsg after a write")
	}
}

func TestLogModel_AddEntry_Invalid(t *testing.T) {
	services := setupTestServicesWithEntries(t, 1)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('n'))
	m.inputs[fieldOdometer].SetValue("2700")

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(runCmd(t, cmd))

	if !m.IsInputMode() {
		t.Error("expected add form to stay open on error")
	}
	if m.err == nil {
		t.Error("expected an error")
	}
	if raws, _ := services.Entry.Raw("Civic"); len(raws) != 1 {
		t.Errorf("expected nothing stored, got %d entries", len(raws))
	}
}

func TestLogModel_AddEntry_Cancel(t *testing.T) {
	services := setupTestServicesWithEntries(t, 1)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('n'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsInputMode() {
		t.Error("expected esc to close the add form")
	}
}

func TestLogModel_AddEntry_SwitchField(t *testing.T) {
	services := setupTestServicesWithEntries(t, 1)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('n'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != fieldFuel {
		t.Errorf("expected fuel focused, got %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focused != fieldDate {
		t.Errorf("expected date focused, got %d", m.focused)
	}
}

func TestLogModel_DeleteEntry(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('d'))
	if !m.IsInputMode() {
		t.Fatal("expected delete confirmation")
	}
	if !strings.Contains(m.View(), "Are you sure") {
		t.Errorf("expected confirmation view, got:\n%s", m.View())
	}

	var cmd tea.Cmd
	m, cmd = m.Update(keyRune('y'))
	m, _ = m.Update(runCmd(t, cmd))

	if got := len(m.result.Entries); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
	if m.status != "Deleted entry from 2024-01-01" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestLogModel_DeleteEntry_Cancel(t *testing.T) {
	services := setupTestServicesWithEntries(t, 2)
	m := newLog(t, services, "Civic")

	m, _ = m.Update(keyRune('d'))
	m, cmd := m.Update(keyRune('n'))
	if m.IsInputMode() {
		t.Error("expected n to cancel")
	}
	if cmd != nil {
		t.Error("expected no command on cancel")
	}
	if raws, _ := services.Entry.Raw("Civic"); len(raws) != 2 {
		t.Errorf("expected entries untouched, got %d", len(raws))
	}
}

func TestLogModel_VehicleChanged(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	if err := services.Vehicle.Add("Bike", nil); err != nil {
		t.Fatal(err)
	}
	m := newLog(t, services, "Civic")
	m, _ = m.Update(keyRune('j'))

	m, cmd := m.Update(ui.VehicleChangedMsg{Name: "Bike"})
	if m.cursor != 0 {
		t.Errorf("expected cursor reset, got %d", m.cursor)
	}
	m, _ = m.Update(runCmd(t, cmd))
	if !strings.Contains(m.View(), "Fuel log for Bike") {
		t.Errorf("expected Bike's log, got:\n%s", m.View())
	}
}

func TestLogModel_ThemeChanged(t *testing.T) {
	services := setupTestServices(t)
	m := NewLogModel(services, "", ui.DefaultStyles(), ui.DefaultKeyMap())

	styles := ui.NewThemeProvider("nord").Styles()
	m, _ = m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: styles})
	if m.styles.ViewTitle.GetForeground() != styles.ViewTitle.GetForeground() {
		t.Error("expected styles to be replaced")
	}
}

func TestLogModel_IgnoresOtherViewsMessages(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	m := newLog(t, services, "Civic")
	before := m.View()

	m, cmd := m.Update(statsLoadedMsg{})
	if cmd != nil {
		t.Error("expected no command")
	}
	if m.View() != before {
		t.Error("expected view unchanged")
	}
}

func newStats(t *testing.T, services *service.Services) StatsModel {
	t.Helper()
	m := NewStatsModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(120, 40)
	m, _ = m.Update(runCmd(t, m.Init()))
	return m
}

func TestStatsModel_NoVehicle(t *testing.T) {
	services := setupTestServices(t)
	m := NewStatsModel(services, "", ui.DefaultStyles(), ui.DefaultKeyMap())
	if m.Init() != nil {
		t.Error("expected no load command without a vehicle")
	}
	if !strings.Contains(m.View(), noVehicleText) {
		t.Errorf("expected no vehicle text, got:\n%s", m.View())
	}
}

func TestStatsModel_View(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := newStats(t, services)

	view := m.View()
	for _, want := range []string{"Statistics for Civic", "Primary", "Total Distance:", "1250.00 km"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestStatsModel_CycleCategories(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := newStats(t, services)

	m, _ = m.Update(keyRune('l'))
	if m.category != 1 {
		t.Errorf("expected category 1, got %d", m.category)
	}
	if !strings.Contains(m.View(), "Total Days Tracked:") {
		t.Errorf("expected time-based stats, got:\n%s", m.View())
	}

	m, _ = m.Update(keyRune('h'))
	m, _ = m.Update(keyRune('h'))
	if m.category != 5 {
		t.Errorf("expected wrap to last category, got %d", m.category)
	}
}

func TestStatsModel_NotEnoughEntries(t *testing.T) {
	services := setupTestServicesWithEntries(t, 2)
	m := newStats(t, services)

	want := "Please add 2 more valid fuel entries to view detailed statistics."
	if !strings.Contains(m.View(), want) {
		t.Errorf("expected notice %q, got:\n%s", want, m.View())
	}

	m, _ = m.Update(keyRune('l'))
	if m.category != 0 {
		t.Errorf("expected category to stay 0, got %d", m.category)
	}
}

func TestStatsModel_DataChanged(t *testing.T) {
	services := setupTestServicesWithEntries(t, 2)
	m := newStats(t, services)

	for _, in := range fillUps[2:] {
		if _, err := services.Entry.Add("Civic", in); err != nil {
			t.Fatal(err)
		}
	}
	m, cmd := m.Update(ui.DataChangedMsg{})
	m, _ = m.Update(runCmd(t, cmd))
	if !strings.Contains(m.View(), "Total Distance:") {
		t.Errorf("expected stats after reload, got:\n%s", m.View())
	}
}

func TestStatsModel_Error(t *testing.T) {
	services := setupTestServices(t)
	m := NewStatsModel(services, "Missing", ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(runCmd(t, m.Init()))
	if !strings.Contains(m.View(), "Error:") {
		t.Errorf("expected error for unknown vehicle, got:\n%s", m.View())
	}
}

func TestOwnershipModel_View(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := NewOwnershipModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(runCmd(t, m.Init()))

	view := m.View()
	for _, want := range []string{"Total Cost of Ownership for Civic", "Car Purchase Price:", "$20000.00", "Cost per Day:"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestOwnershipModel_NoPurchasePrice(t *testing.T) {
	services := setupTestServices(t)
	if err := services.Vehicle.Add("Bike", nil); err != nil {
		t.Fatal(err)
	}
	m := NewOwnershipModel(services, "Bike", ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(runCmd(t, m.Init()))

	if !strings.Contains(m.View(), "add its purchase price") {
		t.Errorf("expected purchase price notice, got:\n%s", m.View())
	}
}

func TestOwnershipModel_NoVehicle(t *testing.T) {
	services := setupTestServices(t)
	m := NewOwnershipModel(services, "", ui.DefaultStyles(), ui.DefaultKeyMap())
	if m.Init() != nil {
		t.Error("expected no load command without a vehicle")
	}
	if !strings.Contains(m.View(), "Please select or add a car") {
		t.Errorf("expected no vehicle notice, got:\n%s", m.View())
	}
}

func TestSeriesModel_View(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := NewSeriesModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)
	m, _ = m.Update(runCmd(t, m.Init()))

	view := m.View()
	for _, want := range []string{"Charts for Civic", "efficiency", "2024-02-15", "#"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}

	m, _ = m.Update(keyRune('l'))
	if !strings.Contains(m.View(), "Cost per Entry ($)") {
		t.Errorf("expected cost series, got:\n%s", m.View())
	}
}

func TestSeriesModel_NotEnoughEntries(t *testing.T) {
	services := setupTestServicesWithEntries(t, 3)
	if _, err := services.Entry.Delete("Civic", 3, nil); err != nil {
		t.Fatal(err)
	}
	m := NewSeriesModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(runCmd(t, m.Init()))

	want := "Please add 2 more valid fuel entries to display charts."
	if !strings.Contains(m.View(), want) {
		t.Errorf("expected notice %q, got:\n%s", want, m.View())
	}
}

func TestSeriesModel_VehicleChanged(t *testing.T) {
	services := setupTestServicesWithEntries(t, 4)
	m := NewSeriesModel(services, "Civic", ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(runCmd(t, m.Init()))

	m, cmd := m.Update(ui.VehicleChangedMsg{Name: ""})
	if cmd != nil {
		t.Error("expected no load command without a vehicle")
	}
	if !strings.Contains(m.View(), noVehicleText) {
		t.Errorf("expected no vehicle text, got:\n%s", m.View())
	}
}

func newConfig(t *testing.T, services *service.Services) ConfigModel {
	t.Helper()
	provider := ui.NewThemeProvider(services.Config.Get().Theme)
	m := NewConfigModel(services, provider, provider.Styles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)
	m, _ = m.Update(runCmd(t, m.Init()))
	return m
}

func TestConfigModel_View(t *testing.T) {
	services := setupTestServices(t)
	m := newConfig(t, services)

	view := m.View()
	for _, want := range []string{
		"Configuration",
		"Using defaults (no config file)",
		"unit_system:", "metric (km, L)",
		"currency_symbol:",
		"storage_backend:", "json",
		"mqtt:", "disabled",
		"theme:", "dracula",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestConfigModel_FileExists(t *testing.T) {
	services := setupTestServices(t)
	if err := services.Config.Init(); err != nil {
		t.Fatal(err)
	}
	m := newConfig(t, services)
	if !strings.Contains(m.View(), "File exists") {
		t.Errorf("expected file exists status, got:\n%s", m.View())
	}
}

func TestConfigModel_ThemeSelector(t *testing.T) {
	services := setupTestServices(t)
	m := newConfig(t, services)

	m, _ = m.Update(keyRune('t'))
	if !m.IsInputMode() {
		t.Fatal("expected theme selector to open")
	}
	if !strings.Contains(m.View(), "(current)") {
		t.Errorf("expected current theme marker, got:\n%s", m.View())
	}

	start := m.themeCursor
	m, _ = m.Update(keyRune('j'))
	if m.themeCursor != start+1 {
		t.Errorf("expected cursor %d, got %d", start+1, m.themeCursor)
	}
	want := m.themes[m.themeCursor]

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsInputMode() {
		t.Error("expected selector to close")
	}
	req, ok := runCmd(t, cmd).(ui.ThemeChangeRequestMsg)
	if !ok {
		t.Fatal("expected ThemeChangeRequestMsg")
	}
	if req.ThemeName != want {
		t.Errorf("expected theme %q, got %q", want, req.ThemeName)
	}
}

func TestConfigModel_ThemeSelector_Cancel(t *testing.T) {
	services := setupTestServices(t)
	m := newConfig(t, services)
	start := m.themeCursor

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRune('j'))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsInputMode() {
		t.Error("expected selector to close")
	}
	if cmd != nil {
		t.Error("expected no theme change on cancel")
	}
	if m.themeCursor != start {
		t.Errorf("expected cursor reset to %d, got %d", start, m.themeCursor)
	}
}

func TestConfigModel_ThemeOffset(t *testing.T) {
	services := setupTestServices(t)
	m := newConfig(t, services)
	m.themeCursor = 0
	m.themeOffset = 0

	m, _ = m.Update(keyRune('t'))
	for i := 0; i < maxVisibleThemes; i++ {
		m, _ = m.Update(keyRune('j'))
	}
	if m.themeOffset != 1 {
		t.Errorf("expected offset 1, got %d", m.themeOffset)
	}
	if !strings.Contains(m.View(), "more themes above") {
		t.Errorf("expected scroll indicator, got:\n%s", m.View())
	}
}

func TestConfigModel_ThemeChanged(t *testing.T) {
	services := setupTestServices(t)
	m := newConfig(t, services)

	styles := ui.NewThemeProvider("nord").Styles()
	m, cmd := m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: styles})
	if m.themeName != "nord" {
		t.Errorf("expected theme nord, got %q", m.themeName)
	}
	if _, ok := runCmd(t, cmd).(configLoadedMsg); !ok {
		t.Error("expected config reload")
	}
}

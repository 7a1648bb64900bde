package views

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/tui/ui"
)

// logMode represents the current mode of the log view
type logMode int

const (
	logModeNormal logMode = iota
	logModeAdd
	logModeDelete
)

// Fields of the add form, in tab order.
const (
	fieldDate = iota
	fieldOdometer
	fieldFuel
	fieldPrice
	fieldCount
)

var fieldLabels = [fieldCount]string{"Date", "Odometer", "Fuel", "Price"}

// LogModel is the model for the log view
type LogModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	vehicle string
	result  *service.LogResult
	cursor  int
	offset  int
	loading bool
	err     error
	status  string

	// Add form state
	mode    logMode
	inputs  [fieldCount]textinput.Model
	focused int

	now func() time.Time
}

// NewLogModel creates a new log view model
func NewLogModel(services *service.Services, vehicle string, styles ui.Styles, keys ui.KeyMap) LogModel {
	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"YYYY-MM-DD or DD/MM/YYYY", "Odometer reading", "Amount filled", "Price per unit"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 20
		in.Width = 24
		inputs[i] = in
	}

	return LogModel{
		services: services,
		styles:   styles,
		keys:     keys,
		vehicle:  vehicle,
		loading:  vehicle != "",
		inputs:   inputs,
		now:      time.Now,
	}
}

// logLoadedMsg is sent when the log is loaded. changed is set when the
// load follows a write.
type logLoadedMsg struct {
	result  *service.LogResult
	err     error
	status  string
	changed bool
}

// Init implements tea.Model
func (m LogModel) Init() tea.Cmd {
	return m.loadLog()
}

// Update implements tea.Model
func (m LogModel) Update(msg tea.Msg) (LogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case logModeAdd:
			return m.handleAddMode(msg)
		case logModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.keepCursorVisible()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.entryCount()-1 {
				m.cursor++
				m.keepCursorVisible()
			}
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			return m, m.nextSortKey()
		case key.Matches(msg, m.keys.Reverse):
			return m, m.reverseSort()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadLog()
		case key.Matches(msg, m.keys.New):
			if m.vehicle == "" {
				return m, nil
			}
			m.mode = logModeAdd
			for i := range m.inputs {
				m.inputs[i].SetValue("")
				m.inputs[i].Blur()
			}
			m.inputs[fieldDate].SetValue(m.now().Format(entry.DateLayout))
			m.focused = fieldOdometer
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if m.entryCount() > 0 {
				m.mode = logModeDelete
			}
			return m, nil
		}

	case logLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.status
		if msg.err == nil {
			m.mode = logModeNormal
			m.result = msg.result
			if m.cursor >= m.entryCount() {
				m.cursor = max(0, m.entryCount()-1)
			}
			m.keepCursorVisible()
		} else if m.mode == logModeAdd {
			m.inputs[m.focused].Focus()
		}
		if msg.changed {
			return m, func() tea.Msg { return ui.DataChangedMsg{} }
		}
		return m, nil

	case ui.VehicleChangedMsg:
		m.vehicle = msg.Name
		m.cursor, m.offset = 0, 0
		m.mode = logModeNormal
		m.status = ""
		m.loading = m.vehicle != ""
		return m, m.loadLog()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == logModeAdd {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleAddMode handles key events when the add form is open
func (m LogModel) handleAddMode(msg tea.KeyMsg) (LogModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		in := entry.Input{
			Date:     strings.TrimSpace(m.inputs[fieldDate].Value()),
			Odometer: strings.TrimSpace(m.inputs[fieldOdometer].Value()),
			Fuel:     strings.TrimSpace(m.inputs[fieldFuel].Value()),
			Price:    strings.TrimSpace(m.inputs[fieldPrice].Value()),
		}
		m.inputs[m.focused].Blur()
		return m, m.addEntry(in)
	case key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
		m.inputs[m.focused].Blur()
		return m, nil
	case msg.String() == "tab", msg.String() == "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		m.inputs[m.focused].Blur()
		m.focused = wrapIndex(m.focused, delta, fieldCount)
		m.inputs[m.focused].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m LogModel) handleDeleteMode(msg tea.KeyMsg) (LogModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = logModeNormal
		return m, m.deleteEntry(m.cursor + 1)
	case msg.String() == "n", msg.String() == "N", key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m LogModel) View() string {
	var b strings.Builder

	switch m.mode {
	case logModeAdd:
		return m.renderAddForm()
	case logModeDelete:
		return m.renderDeleteConfirm()
	}

	if m.vehicle == "" {
		b.WriteString(m.styles.ViewTitle.Render("Fuel Log"))
		b.WriteString("\n\n")
		b.WriteString(noVehicleText)
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render("Fuel log for " + m.vehicle))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.result == nil {
		return b.String()
	}
	if len(m.result.Entries) == 0 {
		b.WriteString("No entries yet. Press n to log a fill-up.")
		return b.String()
	}

	b.WriteString(RenderLogTable(m.result.Entries, m.result.Sort, m.styles, LogTableOptions{
		Units:    m.services.Units.Current(),
		Currency: m.services.Config.Get().CurrencySymbol,
		Cursor:   m.cursor,
		Offset:   m.offset,
		Rows:     m.visibleRows(),
	}))
	b.WriteString("\n")

	total := "Total: " + cli.Count(len(m.result.Entries), "entry")
	if m.result.InvalidCount > 0 {
		total += fmt.Sprintf(" (%d invalid)", m.result.InvalidCount)
	}
	b.WriteString(m.styles.StatLabel.Render(total))
	b.WriteString("\n")
	if len(m.result.Notices) > 0 {
		b.WriteString("\n")
		b.WriteString(renderNotices(m.styles, m.result.Notices))
	}

	return b.String()
}

// renderAddForm renders the new fill-up form
func (m LogModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New fill-up for " + m.vehicle))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := fieldLabels[i]
		if i == m.focused {
			label = "> " + label
		} else {
			label = "  " + label
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", label, in.View()))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.StatusHelp.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m LogModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < m.entryCount() {
		e := m.result.Entries[m.cursor]
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(renderStatLine(m.styles, "Date:", e.Date))
		b.WriteString(renderStatLine(m.styles, "Odometer:", string(e.Raw.OdometerReading)))
		b.WriteString(renderStatLine(m.styles, "Fuel:", string(e.Raw.Fuel)))
		b.WriteString(renderStatLine(m.styles, "Price:", string(e.Raw.Price)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.StatusHelp.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *LogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.keepCursorVisible()
}

// IsInputMode returns true when the view is capturing keyboard input
func (m LogModel) IsInputMode() bool {
	return m.mode != logModeNormal
}

func (m LogModel) entryCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.Entries)
}

// visibleRows is the number of table rows that fit below the title and
// above the totals.
func (m LogModel) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-8, 3)
}

func (m *LogModel) keepCursorVisible() {
	rows := m.visibleRows()
	if rows == 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// loadLog creates a command to load the log in the saved order
func (m LogModel) loadLog() tea.Cmd {
	vehicle := m.vehicle
	if vehicle == "" {
		return nil
	}
	return func() tea.Msg {
		result, err := m.services.Entry.Log(vehicle, nil)
		return logLoadedMsg{result: result, err: err}
	}
}

// nextSortKey moves the sort to the next column, ascending
func (m LogModel) nextSortKey() tea.Cmd {
	current := entry.DefaultSort()
	if m.result != nil {
		current = m.result.Sort
	}
	i := slices.Index(entry.SortKeys, current.Key)
	next := entry.SortConfig{
		Key:       entry.SortKeys[wrapIndex(i, 1, len(entry.SortKeys))],
		Direction: entry.SortAscending,
	}
	return m.applySort(func() (entry.SortConfig, error) {
		return next, m.services.Session.SetSort(next)
	})
}

// reverseSort flips the direction of the current sort column
func (m LogModel) reverseSort() tea.Cmd {
	key := entry.DefaultSortKey
	if m.result != nil {
		key = m.result.Sort.Key
	}
	return m.applySort(func() (entry.SortConfig, error) {
		return m.services.Session.ToggleSort(key)
	})
}

func (m LogModel) applySort(save func() (entry.SortConfig, error)) tea.Cmd {
	vehicle := m.vehicle
	if vehicle == "" {
		return nil
	}
	return func() tea.Msg {
		cfg, err := save()
		if err != nil {
			return logLoadedMsg{err: err}
		}
		result, err := m.services.Entry.Log(vehicle, &cfg)
		return logLoadedMsg{result: result, err: err}
	}
}

// addEntry creates a command to append a fill-up and reload the log
func (m LogModel) addEntry(in entry.Input) tea.Cmd {
	vehicle := m.vehicle
	return func() tea.Msg {
		e, err := m.services.Entry.Add(vehicle, in)
		if err != nil {
			return logLoadedMsg{err: err}
		}
		result, err := m.services.Entry.Log(vehicle, nil)
		return logLoadedMsg{result: result, err: err, status: "Added fill-up on " + e.Date, changed: true}
	}
}

// deleteEntry creates a command to delete the n-th displayed entry
func (m LogModel) deleteEntry(n int) tea.Cmd {
	vehicle := m.vehicle
	var sortCfg *entry.SortConfig
	if m.result != nil {
		s := m.result.Sort
		sortCfg = &s
	}
	return func() tea.Msg {
		deleted, err := m.services.Entry.Delete(vehicle, n, sortCfg)
		if err != nil {
			return logLoadedMsg{err: err}
		}
		result, err := m.services.Entry.Log(vehicle, nil)
		return logLoadedMsg{result: result, err: err, status: "Deleted entry from " + deleted.Date, changed: true}
	}
}

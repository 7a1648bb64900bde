package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/stats"
	"github.com/xolan/fuel/internal/tui/ui"
)

// OwnershipModel shows the total cost of ownership of the vehicle
type OwnershipModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width   int
	height  int
	vehicle string
	result  *service.StatsResult
	loading bool
	err     error
}

// NewOwnershipModel creates a new ownership view model
func NewOwnershipModel(services *service.Services, vehicle string, styles ui.Styles, keys ui.KeyMap) OwnershipModel {
	return OwnershipModel{
		services: services,
		styles:   styles,
		keys:     keys,
		vehicle:  vehicle,
		loading:  vehicle != "",
	}
}

type ownershipLoadedMsg struct {
	result *service.StatsResult
	err    error
}

// Init implements tea.Model
func (m OwnershipModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m OwnershipModel) Update(msg tea.Msg) (OwnershipModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.load()
		}

	case ownershipLoadedMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err

	case ui.VehicleChangedMsg:
		m.vehicle = msg.Name
		m.loading = m.vehicle != ""
		m.result = nil
		return m, m.load()

	case ui.DataChangedMsg:
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m OwnershipModel) View() string {
	var b strings.Builder

	title := "Total Cost of Ownership"
	if m.vehicle != "" {
		title += " for " + m.vehicle
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.vehicle == "":
		b.WriteString(m.styles.Notice.Render(stats.OwnershipNotice(stats.Ownership{Reason: stats.NoVehicle})))
	case m.loading:
		b.WriteString("Loading...")
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result == nil:
		b.WriteString("No data")
	case !m.result.Ownership.Available():
		b.WriteString(m.styles.Notice.Render(stats.OwnershipNotice(m.result.Ownership)))
	default:
		for _, s := range m.result.Ownership.Lines(m.result.Currency) {
			b.WriteString(renderStatLine(m.styles, s.Label+":", s.Value))
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *OwnershipModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m OwnershipModel) load() tea.Cmd {
	vehicle := m.vehicle
	if vehicle == "" {
		return nil
	}
	return func() tea.Msg {
		result, err := m.services.Stats.Compute(vehicle)
		return ownershipLoadedMsg{result: result, err: err}
	}
}

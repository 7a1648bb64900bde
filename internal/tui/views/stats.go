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

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	vehicle  string
	result   *service.StatsResult
	category int
	loading  bool
	err      error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, vehicle string, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		vehicle:  vehicle,
		loading:  vehicle != "",
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result *service.StatsResult
	err    error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.category = wrapIndex(m.category, -1, m.categoryCount())
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.category = wrapIndex(m.category, 1, m.categoryCount())
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.result = msg.result
		if m.category >= m.categoryCount() {
			m.category = 0
		}

	case ui.VehicleChangedMsg:
		m.vehicle = msg.Name
		m.loading = m.vehicle != ""
		m.result = nil
		return m, m.loadStats()

	case ui.DataChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	if m.vehicle == "" {
		b.WriteString(m.styles.ViewTitle.Render("Statistics"))
		b.WriteString("\n\n")
		b.WriteString(noVehicleText)
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render("Statistics for " + m.vehicle))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}
	if !m.result.Stats.Available() {
		b.WriteString(m.styles.Notice.Render(stats.NeedMore(m.result.Stats.Needed, stats.SectionStats)))
		return b.String()
	}

	categories := m.result.Stats.Report.Categories
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	b.WriteString(renderSelector(m.styles, names, m.category))
	b.WriteString("\n\n")

	c := categories[m.category]
	if c.Description != "" {
		b.WriteString(m.styles.StatLabel.UnsetWidth().Render(c.Description))
		b.WriteString("\n\n")
	}
	for _, s := range c.Stats {
		b.WriteString(renderStatLine(m.styles, s.Label+":", s.Value))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m StatsModel) categoryCount() int {
	if m.result == nil || m.result.Stats.Report == nil {
		return 0
	}
	return len(m.result.Stats.Report.Categories)
}

// loadStats creates a command to compute the statistics
func (m StatsModel) loadStats() tea.Cmd {
	vehicle := m.vehicle
	if vehicle == "" {
		return nil
	}
	return func() tea.Msg {
		result, err := m.services.Stats.Compute(vehicle)
		return statsLoadedMsg{result: result, err: err}
	}
}

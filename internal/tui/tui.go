// Package tui provides the Terminal User Interface for the fuel application.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/tui/ui"
	"github.com/xolan/fuel/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabLog Tab = iota
	TabStats
	TabOwnership
	TabSeries
	TabConfig
)

var tabNames = []string{"Log", "Stats", "Ownership", "Series", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	vehicle   string
	err       error

	// View models
	logView       views.LogModel
	statsView     views.StatsModel
	ownershipView views.OwnershipModel
	seriesView    views.SeriesModel
	configView    views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// vehicleErrMsg reports a failed vehicle switch
type vehicleErrMsg struct{ err error }

// New creates a new TUI model showing vehicle
func New(services *service.Services, vehicle string) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabLog,
		vehicle:       vehicle,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		logView:       views.NewLogModel(services, vehicle, styles, keys),
		statsView:     views.NewStatsModel(services, vehicle, styles, keys),
		ownershipView: views.NewOwnershipModel(services, vehicle, styles, keys),
		seriesView:    views.NewSeriesModel(services, vehicle, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.logView.Init(),
		m.statsView.Init(),
		m.ownershipView.Init(),
		m.seriesView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.logView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.ownershipView.SetSize(m.width, contentHeight)
		m.seriesView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()
		return m, m.saveThemeConfig(m.themeProvider.CurrentName(), m.styles)

	case ui.VehicleChangedMsg:
		m.vehicle = msg.Name
		m.err = nil

	case vehicleErrMsg:
		m.err = msg.err
		return m, nil
	}

	return m.broadcast(msg)
}

// handleKey applies global keys and forwards the rest to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isModalInputMode() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateActive(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

	case key.Matches(msg, m.keys.Tab1):
		return m.switchTab(TabLog)
	case key.Matches(msg, m.keys.Tab2):
		return m.switchTab(TabStats)
	case key.Matches(msg, m.keys.Tab3):
		return m.switchTab(TabOwnership)
	case key.Matches(msg, m.keys.Tab4):
		return m.switchTab(TabSeries)
	case key.Matches(msg, m.keys.Tab5):
		return m.switchTab(TabConfig)

	case key.Matches(msg, m.keys.NextVehicle):
		return m, m.nextVehicle()
	}

	return m.updateActive(msg)
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// updateActive sends msg to the active view only
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabLog:
		m.logView, cmd = m.logView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabOwnership:
		m.ownershipView, cmd = m.ownershipView.Update(msg)
	case TabSeries:
		m.seriesView, cmd = m.seriesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

// broadcast sends msg to every view. Views ignore messages they don't
// know, so a load result reaches its view even when another tab is active.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)
	m.logView, cmds[0] = m.logView.Update(msg)
	m.statsView, cmds[1] = m.statsView.Update(msg)
	m.ownershipView, cmds[2] = m.ownershipView.Update(msg)
	m.seriesView, cmds[3] = m.seriesView.Update(msg)
	m.configView, cmds[4] = m.configView.Update(msg)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabLog:
		b.WriteString(m.logView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabOwnership:
		b.WriteString(m.ownershipView.View())
	case TabSeries:
		b.WriteString(m.seriesView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar with the current vehicle on the right
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}

	vehicle := "no vehicle"
	if m.vehicle != "" {
		vehicle = m.vehicle
	}
	tabs = append(tabs, m.styles.Vehicle.Render(vehicle))

	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.activeTab == TabLog && m.logView.IsInputMode():
		parts = append(parts,
			m.renderKeyHelp("Tab", "switch field"),
			m.renderKeyHelp("Enter", "save"),
			m.renderKeyHelp("Esc", "cancel"))
	case m.activeTab == TabConfig && m.configView.IsInputMode():
		parts = append(parts,
			m.renderKeyHelp("↑/↓", "navigate"),
			m.renderKeyHelp("Enter", "select"),
			m.renderKeyHelp("Esc", "cancel"))
	default:
		switch m.activeTab {
		case TabLog:
			parts = append(parts,
				m.renderKeyHelp("n", "new"),
				m.renderKeyHelp("d", "delete"),
				m.renderKeyHelp("s/S", "sort"))
		case TabStats:
			parts = append(parts, m.renderKeyHelp("←/→", "category"))
		case TabSeries:
			parts = append(parts, m.renderKeyHelp("←/→", "series"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts,
			m.renderKeyHelp("v", "vehicle"),
			m.renderKeyHelp("1-5", "views"),
			m.renderKeyHelp("?", "help"),
			m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the current view holds the keyboard, so
// global keys must not fire
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabLog:
		return m.logView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView reloads the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabLog:
		return m.logView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabOwnership:
		return m.ownershipView.Init()
	case TabSeries:
		return m.seriesView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// nextVehicle selects the vehicle after the current one by name
func (m Model) nextVehicle() tea.Cmd {
	current := m.vehicle
	return func() tea.Msg {
		list, err := m.services.Vehicle.List()
		if err != nil {
			return vehicleErrMsg{err: err}
		}
		if len(list) == 0 {
			return nil
		}
		names := make([]string, len(list))
		for i, v := range list {
			names[i] = v.Name
		}
		next := names[(slices.Index(names, current)+1)%len(names)]
		if next == current {
			return nil
		}
		if err := m.services.Vehicle.Use(next); err != nil {
			return vehicleErrMsg{err: err}
		}
		return ui.VehicleChangedMsg{Name: next}
	}
}

// saveThemeConfig saves the theme to the config file, then announces it
func (m Model) saveThemeConfig(themeName string, styles ui.Styles) tea.Cmd {
	return func() tea.Msg {
		_ = m.services.Config.Edit(func(cfg *config.Config) { cfg.Theme = themeName })
		return ui.ThemeChangedMsg{ThemeName: themeName, Styles: styles}
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-5    Switch views\n")
	help.WriteString("  v          Next vehicle\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabLog:
		help.WriteString(m.styles.StatLabel.Render("Log:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  n          New fill-up\n")
		help.WriteString("  d          Delete entry\n")
		help.WriteString("  s          Sort by next column\n")
		help.WriteString("  S          Reverse sort\n")
		help.WriteString("  r          Refresh\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next category\n")
		help.WriteString("  r          Refresh\n")
	case TabOwnership:
		help.WriteString(m.styles.StatLabel.Render("Ownership:"))
		help.WriteString("\n")
		help.WriteString("  r          Refresh\n")
	case TabSeries:
		help.WriteString(m.styles.StatLabel.Render("Series:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next series\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI on vehicle, or on the selected vehicle when empty
func Run(services *service.Services, vehicle string) error {
	if vehicle == "" {
		vehicle = services.Vehicle.Current()
	} else {
		name, err := services.Vehicle.Resolve(vehicle)
		if err != nil {
			return err
		}
		vehicle = name
	}

	p := tea.NewProgram(New(services, vehicle), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/stats"
	"github.com/xolan/fuel/internal/tui/ui"
)

// SeriesModel charts one series at a time as horizontal bars
type SeriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	vehicle  string
	series   []stats.Series
	selected int
	needed   int
	loading  bool
	err      error
}

// NewSeriesModel creates a new series view model
func NewSeriesModel(services *service.Services, vehicle string, styles ui.Styles, keys ui.KeyMap) SeriesModel {
	return SeriesModel{
		services: services,
		styles:   styles,
		keys:     keys,
		vehicle:  vehicle,
		loading:  vehicle != "",
	}
}

type seriesLoadedMsg struct {
	series []stats.Series
	needed int
	err    error
}

// Init implements tea.Model
func (m SeriesModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m SeriesModel) Update(msg tea.Msg) (SeriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.selected = wrapIndex(m.selected, -1, len(m.series))
		case key.Matches(msg, m.keys.Right):
			m.selected = wrapIndex(m.selected, 1, len(m.series))
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case seriesLoadedMsg:
		m.loading = false
		m.series = msg.series
		m.needed = msg.needed
		m.err = msg.err
		if m.selected >= len(m.series) {
			m.selected = 0
		}

	case ui.VehicleChangedMsg:
		m.vehicle = msg.Name
		m.loading = m.vehicle != ""
		m.series = nil
		return m, m.load()

	case ui.DataChangedMsg:
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m SeriesModel) View() string {
	var b strings.Builder

	title := "Charts"
	if m.vehicle != "" {
		title += " for " + m.vehicle
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.vehicle == "":
		b.WriteString(noVehicleText)
		return b.String()
	case m.loading:
		b.WriteString("Loading...")
		return b.String()
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	case len(m.series) == 0:
		b.WriteString(m.styles.Notice.Render(stats.NeedMore(m.needed, stats.SectionSeries)))
		return b.String()
	}

	names := make([]string, len(m.series))
	for i, s := range m.series {
		names[i] = s.Name
	}
	b.WriteString(renderSelector(m.styles, names, m.selected))
	b.WriteString("\n\n")

	s := m.series[m.selected]
	b.WriteString(m.styles.ColumnHead.Render(s.Label))
	b.WriteString("\n")
	b.WriteString(m.renderBars(s))

	return b.String()
}

// SetSize sets the view dimensions
func (m *SeriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// renderBars draws one row per point, newest rows last.
func (m SeriesModel) renderBars(s stats.Series) string {
	values := s.Values()
	if len(values) == 0 {
		return ""
	}
	top := slices.Max(values)

	width := m.width - 36
	if width < 10 {
		width = 40
	}

	points := s.Points
	if rows := m.height - 8; rows > 0 && len(points) > rows {
		points = points[len(points)-rows:]
	}

	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "%-10s %12s ", p.Date, cli.FormatNumber(p.Value, 2))
		b.WriteString(m.styles.Bar.Render(cli.Bar(p.Value, top, width)))
		b.WriteString("\n")
	}
	if s.Inverted {
		b.WriteString(m.styles.StatusHelp.Render("Lower is better"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m SeriesModel) load() tea.Cmd {
	vehicle := m.vehicle
	if vehicle == "" {
		return nil
	}
	return func() tea.Msg {
		result, err := m.services.Stats.Compute(vehicle)
		if err != nil {
			return seriesLoadedMsg{err: err}
		}
		return seriesLoadedMsg{series: result.Series, needed: result.Stats.Needed}
	}
}

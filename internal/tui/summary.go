package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/exlog/internal/store"
)

var dimensions = []store.Dimension{store.ByMovement, store.ByRepType, store.ByResistanceType}

var barColors = []lipgloss.Color{colorPrimary, colorSecondary, colorAccent, colorWarning, colorSuccess, colorHighlight}

type summaryModel struct {
	store  *store.Store
	width  int
	height int

	dim     int // index into dimensions
	tallies []store.Tally
	total   int

	chart barchart.Model
}

func newSummaryModel(s *store.Store) summaryModel {
	return summaryModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (m *summaryModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.buildChart()
}

type summaryDataMsg struct {
	dim     store.Dimension
	tallies []store.Tally
	total   int
	err     error
}

func (m summaryModel) dimension() store.Dimension {
	return dimensions[m.dim]
}

func (m summaryModel) refresh() tea.Cmd {
	d := m.dimension()
	return func() tea.Msg {
		tallies, err := m.store.CountBy(d)
		if err != nil {
			return summaryDataMsg{dim: d, err: err}
		}
		total, err := m.store.Count()
		return summaryDataMsg{dim: d, tallies: tallies, total: total, err: err}
	}
}

func (m summaryModel) update(msg tea.Msg) (summaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryDataMsg:
		// Drop results for a grouping that is no longer selected.
		if msg.dim != m.dimension() {
			return m, nil
		}
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Summary error: %v", msg.err), isError: true}
			}
		}
		m.tallies = msg.tallies
		m.total = msg.total
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.dim = (m.dim + len(dimensions) - 1) % len(dimensions)
			return m, m.refresh()
		case key.Matches(msg, keys.Right):
			m.dim = (m.dim + 1) % len(dimensions)
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m *summaryModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)
	if len(m.tallies) == 0 {
		return
	}

	labelWidth := max(3, chartWidth/len(m.tallies)-1)
	bars := make([]barchart.BarData, 0, len(m.tallies))
	for i, t := range m.tallies {
		bars = append(bars, barchart.BarData{
			Label: truncate(t.Label, labelWidth),
			Values: []barchart.BarValue{{
				Name:  t.Label,
				Value: float64(t.Count),
				Style: lipgloss.NewStyle().Foreground(barColors[i%len(barColors)]),
			}},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m summaryModel) view() string {
	w := m.width - 4

	var tabs []string
	for i, d := range dimensions {
		if i == m.dim {
			tabs = append(tabs, activeTabStyle.Render(d.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(d.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Summary"), "  ",
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...), "  ",
		mutedStyle.Render(fmt.Sprintf("%d exercises", m.total)),
	)

	nav := mutedStyle.Render("  ←/→: change grouping")

	if len(m.tallies) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			header, "", mutedStyle.Render("  Nothing to summarize yet"), "", nav,
		))
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", m.chart.View(), "", m.renderTable(w), "", nav,
		),
	)
}

func (m summaryModel) renderTable(w int) string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-28s %8s %8s", m.dimension().String(), "Count", "Share")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 46))))

	for i, t := range m.tallies {
		dot := lipgloss.NewStyle().Foreground(barColors[i%len(barColors)]).Render("●")
		share := 0.0
		if m.total > 0 {
			share = 100 * float64(t.Count) / float64(m.total)
		}
		rows = append(rows, fmt.Sprintf("  %s %-26s %8d %7.0f%%", dot, truncate(t.Label, 26), t.Count, share))
	}
	return strings.Join(rows, "\n")
}

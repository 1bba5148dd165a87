package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/exlog/internal/exercise"
)

type catalogSection int

const (
	sectionMovements catalogSection = iota
	sectionResistances
	sectionRepTypes
)

var catalogSections = []string{"Movements", "Resistance Types", "Rep Types"}

type catalogEntry struct {
	value       string
	label       string
	description string
}

// catalogModel is a read-only browser over the option catalogs.
type catalogModel struct {
	width  int
	height int

	section catalogSection
	cursor  int
}

func newCatalogModel() catalogModel {
	return catalogModel{}
}

func (c *catalogModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c catalogModel) entries() []catalogEntry {
	var out []catalogEntry
	switch c.section {
	case sectionMovements:
		for _, o := range exercise.Movements() {
			out = append(out, catalogEntry{value: string(o.Value), label: o.Label})
		}
	case sectionResistances:
		for _, o := range exercise.ResistanceTypes() {
			out = append(out, catalogEntry{value: string(o.Value), label: o.Label, description: o.Description})
		}
	case sectionRepTypes:
		for _, o := range exercise.RepTypes() {
			out = append(out, catalogEntry{value: string(o.Value), label: o.Label, description: o.Description})
		}
	}
	return out
}

func (c catalogModel) update(msg tea.Msg) (catalogModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(km, keys.Left):
		c.section = (c.section + catalogSection(len(catalogSections)) - 1) % catalogSection(len(catalogSections))
		c.cursor = 0
	case key.Matches(km, keys.Right):
		c.section = (c.section + 1) % catalogSection(len(catalogSections))
		c.cursor = 0
	case key.Matches(km, keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(km, keys.Down):
		if c.cursor < len(c.entries())-1 {
			c.cursor++
		}
	}
	return c, nil
}

func (c catalogModel) view() string {
	w := c.width - 4

	var tabs []string
	for i, name := range catalogSections {
		if catalogSection(i) == c.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Catalog"), "  ", lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
	)

	entries := c.entries()
	fit := max(1, c.height-8)
	first := 0
	if c.cursor >= fit {
		first = c.cursor - fit + 1
	}
	last := min(len(entries), first+fit)

	var rows []string
	rows = append(rows, header, "")
	for i := first; i < last; i++ {
		e := entries[i]
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := style.Render(fmt.Sprintf("%s%-26s", cursor, e.label)) + mutedStyle.Render(fmt.Sprintf(" %-20s", e.value))
		if e.description != "" {
			line += subtitleStyle.Render(e.description)
		}
		rows = append(rows, line)
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d of %d  ←/→: section  ↑/↓: move", c.cursor+1, len(entries))))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/exlog/internal/config"
	"github.com/sadopc/exlog/internal/export"
	"github.com/sadopc/exlog/internal/store"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	log    logrus.FieldLogger
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	// Export preview
	previewing    bool
	previewFormat export.Format
	previewText   string
	preview       viewport.Model

	exercises exercisesModel
	summary   summaryModel
	catalog   catalogModel

	help        help.Model
	status      string
	statusError bool
}

func NewApp(s *store.Store, cfg *config.Config, log logrus.FieldLogger) App {
	h := help.New()
	h.ShowAll = false

	cursor := 0
	for i, f := range export.Formats {
		if f == cfg.ExportFormat() {
			cursor = i
		}
	}

	return App{
		store:        s,
		log:          log,
		activeView:   viewExercises,
		exportCursor: cursor,
		preview:      viewport.New(80, 20),
		exercises:    newExercisesModel(s, cfg.Form.FormState(), log),
		summary:      newSummaryModel(s),
		catalog:      newCatalogModel(),
		help:         h,
	}
}

func (a App) Init() tea.Cmd {
	return a.exercises.refresh()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.exercises.setSize(a.width, contentHeight)
		a.summary.setSize(a.width, contentHeight)
		a.catalog.setSize(a.width, contentHeight)
		a.preview.Width = max(10, a.width-8)
		a.preview.Height = max(3, contentHeight-8)
		return a, nil

	case tea.KeyMsg:
		if a.previewing {
			return a.updatePreview(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewExercises
			return a, a.exercises.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewSummary
			return a, a.summary.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewCatalog
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}

	case statusMsg:
		a.setStatus(msg.text, msg.isError)
		return a, nil

	case exerciseSavedMsg:
		verb := "Added"
		if msg.replaced {
			verb = "Updated"
		}
		a.setStatus(fmt.Sprintf("%s %q", verb, msg.exercise.Name), false)
		var cmd tea.Cmd
		a.exercises, cmd = a.exercises.update(msg)
		return a, cmd

	case exerciseDeletedMsg:
		a.setStatus(fmt.Sprintf("Deleted %q", msg.name), false)
		var cmd tea.Cmd
		a.exercises, cmd = a.exercises.update(msg)
		return a, cmd

	case exercisesDataMsg:
		var cmd tea.Cmd
		a.exercises, cmd = a.exercises.update(msg)
		return a, cmd

	case summaryDataMsg:
		var cmd tea.Cmd
		a.summary, cmd = a.summary.update(msg)
		return a, cmd

	case exportReadyMsg:
		a.previewing = true
		a.previewFormat = export.Format(msg.format)
		a.previewText = msg.content
		a.preview.SetContent(msg.content)
		a.preview.GotoTop()
		return a, nil

	case clipboardMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Error("copy export")
			a.setStatus(fmt.Sprintf("Copy error: %v", msg.err), true)
		} else {
			a.setStatus(fmt.Sprintf("Copied %s export to clipboard", strings.ToUpper(string(a.previewFormat))), false)
		}
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusError = isError
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewExercises:
		a.exercises, cmd = a.exercises.update(msg)
	case viewSummary:
		a.summary, cmd = a.summary.update(msg)
	case viewCatalog:
		a.catalog, cmd = a.catalog.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	return a.activeView == viewExercises && a.exercises.editor.active
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewExercises:
		return a.exercises.refresh()
	case viewSummary:
		return a.summary.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewExercises:
		content = a.exercises.view()
	case viewSummary:
		content = a.summary.view()
	case viewCatalog:
		content = a.catalog.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	switch {
	case a.previewing:
		content = a.renderPreview()
	case a.exportPicking:
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("exlog")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := successStyle
		if a.statusError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Export Format"), "")
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+strings.ToUpper(string(f))))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: preview  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.buildExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) buildExport(format export.Format) tea.Cmd {
	return func() tea.Msg {
		list, err := a.store.List()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		var buf bytes.Buffer
		if err := export.Write(&buf, format, list); err != nil {
			a.log.WithError(err).WithField("format", format).Error("export")
			return statusMsg{text: fmt.Sprintf("%s error: %v", strings.ToUpper(string(format)), err), isError: true}
		}
		a.log.WithFields(logrus.Fields{"format": format, "count": len(list)}).Debug("export rendered")
		return exportReadyMsg{format: string(format), content: buf.String()}
	}
}

func (a App) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
		a.previewing = false
		return a, nil
	case key.Matches(msg, keys.Copy):
		return a, copyToClipboard(a.previewText)
	}

	var cmd tea.Cmd
	a.preview, cmd = a.preview.Update(msg)
	return a, cmd
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: writeClipboard(text)}
	}
}

func (a App) renderPreview() string {
	title := titleStyle.Render(fmt.Sprintf("%s Export", strings.ToUpper(string(a.previewFormat))))
	scroll := mutedStyle.Render(fmt.Sprintf("  %3.0f%%", a.preview.ScrollPercent()*100))
	nav := mutedStyle.Render("  ↑/↓: scroll  c: copy  esc: close")

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, scroll), "", a.preview.View(), "", nav,
	))
}

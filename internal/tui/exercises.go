package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/exlog/internal/exercise"
	"github.com/sadopc/exlog/internal/store"
)

// cardHeight is the number of lines one exercise card takes, spacing included.
const cardHeight = 6

type exercisesModel struct {
	store    *store.Store
	log      logrus.FieldLogger
	defaults exercise.FormState
	width    int
	height   int

	exercises []exercise.Exercise
	cursor    int

	editor editorModel
}

func newExercisesModel(s *store.Store, defaults exercise.FormState, log logrus.FieldLogger) exercisesModel {
	return exercisesModel{
		store:    s,
		log:      log,
		defaults: defaults,
	}
}

func (p *exercisesModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p exercisesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		list, err := p.store.List()
		return exercisesDataMsg{exercises: list, err: err}
	}
}

func (p exercisesModel) update(msg tea.Msg) (exercisesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case exercisesDataMsg:
		if msg.err != nil {
			p.log.WithError(msg.err).Error("list exercises")
			return p, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Load error: %v", msg.err), isError: true}
			}
		}
		p.exercises = msg.exercises
		if p.cursor >= len(p.exercises) {
			p.cursor = max(0, len(p.exercises)-1)
		}
		return p, nil

	case exerciseSavedMsg:
		return p, p.refresh()

	case exerciseDeletedMsg:
		if p.editor.editing(msg.id) {
			p.editor = editorModel{}
		}
		return p, p.refresh()
	}

	if p.editor.active {
		return p.updateEditor(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return p.updateList(msg)
	}
	return p, nil
}

func (p exercisesModel) updateList(msg tea.KeyMsg) (exercisesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.exercises)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.New):
		p.editor = newEditor(p.defaults.Clone(), nil)
		return p, nil
	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
		if e, ok := p.selected(); ok {
			p.editor = newEditor(exercise.ToFormState(e), &e)
		}
		return p, nil
	case key.Matches(msg, keys.Delete):
		if e, ok := p.selected(); ok {
			return p, p.remove(e)
		}
	}
	return p, nil
}

func (p exercisesModel) selected() (exercise.Exercise, bool) {
	if p.cursor < 0 || p.cursor >= len(p.exercises) {
		return exercise.Exercise{}, false
	}
	return p.exercises[p.cursor], true
}

// save adds e, or replaces the stored exercise with the same id when replace
// is set.
func (p exercisesModel) save(e exercise.Exercise, replace bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if replace {
			err = p.store.Replace(e.ID, e)
		} else {
			err = p.store.Add(e)
		}
		log := p.log.WithFields(logrus.Fields{"exercise_id": e.ID, "replace": replace})
		if err != nil {
			log.WithError(err).Error("save exercise")
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		log.Debug("exercise saved")
		return exerciseSavedMsg{exercise: e, replaced: replace}
	}
}

func (p exercisesModel) remove(e exercise.Exercise) tea.Cmd {
	return func() tea.Msg {
		if err := p.store.Remove(e.ID); err != nil {
			p.log.WithError(err).WithField("exercise_id", e.ID).Error("delete exercise")
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		p.log.WithField("exercise_id", e.ID).Debug("exercise deleted")
		return exerciseDeletedMsg{id: e.ID, name: e.Name}
	}
}

func (p exercisesModel) view() string {
	if p.editor.active {
		return p.editor.view(p.width - 4)
	}
	return p.renderList()
}

func (p exercisesModel) renderList() string {
	w := p.width - 4
	title := titleStyle.Render(fmt.Sprintf("Exercises (%d)", len(p.exercises)))

	if len(p.exercises) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No exercises created yet."),
			"",
			mutedStyle.Render("  n: new exercise"),
		)
		return panelStyle.Width(w).Render(content)
	}

	first, last := p.visibleRange()
	var rows []string
	rows = append(rows, title, "")
	if first > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  ↑ %d more", first)))
	}
	for i := first; i < last; i++ {
		rows = append(rows, renderCard(p.exercises[i], i == p.cursor, w-6), "")
	}
	if last < len(p.exercises) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(p.exercises)-last)))
	}
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  ↑/↓: move"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// visibleRange returns the slice of exercises that fits the panel, keeping
// the cursor in view.
func (p exercisesModel) visibleRange() (int, int) {
	fit := max(1, (p.height-8)/cardHeight)
	if fit >= len(p.exercises) {
		return 0, len(p.exercises)
	}
	first := 0
	if p.cursor >= fit {
		first = p.cursor - fit + 1
	}
	return first, min(len(p.exercises), first+fit)
}

func renderCard(e exercise.Exercise, selected bool, width int) string {
	name := normalItemStyle.Bold(true).Render(e.Name)
	style := cardStyle
	if selected {
		name = selectedItemStyle.Render(e.Name)
		style = selectedCardStyle
	}

	lines := []string{
		name,
		accentStyle.Render(e.MovementName()) + mutedStyle.Render("  ·  ") + highlightStyle.Render(exercise.DescribeReps(e.RepConfiguration)),
	}

	if len(e.Resistances) == 0 {
		lines = append(lines, mutedStyle.Render("No resistance"))
	} else {
		tags := make([]string, 0, len(e.Resistances))
		for _, r := range e.Resistances {
			tags = append(tags, tagStyle.Render("["+exercise.DescribeResistance(r)+"]"))
		}
		lines = append(lines, strings.Join(tags, " "))
	}

	if e.Notes != "" {
		lines = append(lines, subtitleStyle.Render(truncate(firstLine(e.Notes), max(10, width))))
	} else {
		lines = append(lines, subtitleStyle.Render("Updated "+e.UpdatedAt.Local().Format("Jan 02 15:04")))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

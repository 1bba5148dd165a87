package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/exlog/internal/exercise"
)

type editorStage int

const (
	stageResistances editorStage = iota
	stageResistanceEntry
	stageDetails
)

// editorModel walks one exercise through resistances, then details. state is
// the only thing mutated while editing; prev is a copy of the exercise being
// edited and nil when creating.
type editorModel struct {
	active bool
	stage  editorStage
	cursor int

	state *exercise.FormState
	prev  *exercise.Exercise
	form  *huh.Form

	// Form field pointers (survive value copies)
	entry    *exercise.ResistanceFormEntry
	entryNew bool
	numbers  *numberInputs
}

// numberInputs holds the rep parameters as typed text.
type numberInputs struct {
	repCount    string
	hold        string
	tempoCount  string
	eccentric   string
	pauseBottom string
	concentric  string
	pauseTop    string
}

func newEditor(state exercise.FormState, prev *exercise.Exercise) editorModel {
	return editorModel{
		active:  true,
		stage:   stageResistances,
		state:   &state,
		prev:    prev,
		entry:   &exercise.ResistanceFormEntry{},
		numbers: &numberInputs{},
	}
}

func (e editorModel) editing(id string) bool {
	return e.active && e.prev != nil && e.prev.ID == id
}

func (e editorModel) title() string {
	if e.prev != nil {
		return "Edit Exercise: " + e.prev.Name
	}
	return "New Exercise"
}

func (p exercisesModel) updateEditor(msg tea.Msg) (exercisesModel, tea.Cmd) {
	if p.editor.stage != stageResistances {
		return p.updateEditorForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	ed := &p.editor
	entries := ed.state.Resistances
	switch {
	case key.Matches(km, keys.Back):
		p.editor = editorModel{}
	case key.Matches(km, keys.Up):
		if ed.cursor > 0 {
			ed.cursor--
		}
	case key.Matches(km, keys.Down):
		if ed.cursor < len(entries)-1 {
			ed.cursor++
		}
	case key.Matches(km, keys.Add):
		return p.showResistanceForm(exercise.ResistanceFormEntry{Type: exercise.ResistanceBarbell}, true)
	case key.Matches(km, keys.Enter):
		if ed.cursor < len(entries) {
			return p.showResistanceForm(entries[ed.cursor], false)
		}
	case key.Matches(km, keys.Delete):
		if ed.cursor < len(entries) {
			ed.state.RemoveResistance(entries[ed.cursor].ID)
			if ed.cursor >= len(ed.state.Resistances) {
				ed.cursor = max(0, len(ed.state.Resistances)-1)
			}
		}
	case key.Matches(km, keys.Toggle):
		if ed.cursor < len(entries) {
			entry := entries[ed.cursor]
			entry.IsDual = !entry.IsDual
			ed.state.UpdateResistance(entry)
		}
	case key.Matches(km, keys.Tab):
		return p.showDetailsForm()
	}
	return p, nil
}

func (p exercisesModel) updateEditorForm(msg tea.Msg) (exercisesModel, tea.Cmd) {
	// Escape leaves the form and returns to the resistance list.
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		p.editor.stage = stageResistances
		p.editor.form = nil
		return p, nil
	}
	if p.editor.form == nil {
		return p, nil
	}

	form, cmd := p.editor.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.editor.form = f
	}

	switch p.editor.form.State {
	case huh.StateCompleted:
		if p.editor.stage == stageResistanceEntry {
			return p.completeResistanceEntry(), nil
		}
		return p.submit()
	case huh.StateAborted:
		p.editor.stage = stageResistances
		p.editor.form = nil
		return p, nil
	}
	return p, cmd
}

func (p exercisesModel) showResistanceForm(entry exercise.ResistanceFormEntry, isNew bool) (exercisesModel, tea.Cmd) {
	*p.editor.entry = entry
	p.editor.entryNew = isNew
	p.editor.stage = stageResistanceEntry

	options := make([]huh.Option[exercise.ResistanceType], 0, len(exercise.ResistanceTypes()))
	for _, o := range exercise.ResistanceTypes() {
		label := o.Label
		if o.Description != "" {
			label += " - " + o.Description
		}
		options = append(options, huh.NewOption(label, o.Value))
	}

	p.editor.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[exercise.ResistanceType]().Title("Resistance Type").Options(options...).Height(8).Value(&p.editor.entry.Type),
			huh.NewInput().Title("Weight (lbs)").Placeholder("optional").Value(&p.editor.entry.Weight),
			huh.NewConfirm().Title("Dual").Description("One per side, e.g. a pair of dumbbells").
				Affirmative("Yes").Negative("No").Value(&p.editor.entry.IsDual),
		),
	).WithShowHelp(true).WithShowErrors(true)

	return p, p.editor.form.Init()
}

// completeResistanceEntry writes the submitted entry back into the form state.
func (p exercisesModel) completeResistanceEntry() exercisesModel {
	ed := &p.editor
	entry := *ed.entry
	if ed.entryNew {
		entry.ID = ed.state.AddResistance(entry.Type)
		ed.cursor = len(ed.state.Resistances) - 1
	}
	ed.state.UpdateResistance(entry)
	ed.stage = stageResistances
	ed.form = nil
	return p
}

func (p exercisesModel) showDetailsForm() (exercisesModel, tea.Cmd) {
	s := p.editor.state
	n := p.editor.numbers
	*n = numbersFrom(*s)
	p.editor.stage = stageDetails

	movements := make([]huh.Option[exercise.Movement], 0, len(exercise.Movements()))
	for _, o := range exercise.Movements() {
		movements = append(movements, huh.NewOption(o.Label, o.Value))
	}
	repTypes := make([]huh.Option[exercise.RepType], 0, len(exercise.RepTypes()))
	for _, o := range exercise.RepTypes() {
		repTypes = append(repTypes, huh.NewOption(o.Label+" - "+o.Description, o.Value))
	}
	hiddenUnless := func(t exercise.RepType) func() bool {
		return func() bool { return s.RepType != t }
	}

	p.editor.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[exercise.Movement]().Title("Primary Movement").Options(movements...).Height(10).Value(&s.PrimaryMovement),
		),
		huh.NewGroup(
			huh.NewInput().Title("Custom Movement Name").Placeholder("e.g. Farmer Carry").Value(&s.CustomMovementName),
		).WithHideFunc(func() bool { return s.PrimaryMovement != exercise.MovementOther }),
		huh.NewGroup(
			huh.NewSelect[exercise.RepType]().Title("Rep Type").Options(repTypes...).Value(&s.RepType),
		),
		huh.NewGroup(
			huh.NewInput().Title("Reps").Value(&n.repCount),
		).WithHideFunc(func() bool { return !countOnly(s.RepType) }),
		huh.NewGroup(
			huh.NewInput().Title("Hold Duration (seconds)").Value(&n.hold),
		).WithHideFunc(hiddenUnless(exercise.RepHold)),
		huh.NewGroup(
			huh.NewInput().Title("Reps").Value(&n.tempoCount),
			huh.NewInput().Title("Eccentric (s)").Value(&n.eccentric),
			huh.NewInput().Title("Pause at Bottom (s)").Value(&n.pauseBottom),
			huh.NewInput().Title("Concentric (s)").Value(&n.concentric),
			huh.NewInput().Title("Pause at Top (s)").Value(&n.pauseTop),
		).WithHideFunc(hiddenUnless(exercise.RepTempo)),
		huh.NewGroup(
			huh.NewInput().Title("Exercise Name").
				PlaceholderFunc(func() string { return exercise.DeriveDefaultName(*s) }, s).
				Value(&s.Name),
			huh.NewText().Title("Notes").Lines(3).Value(&s.Notes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	return p, p.editor.form.Init()
}

// submit builds the exercise from the form state and saves it.
func (p exercisesModel) submit() (exercisesModel, tea.Cmd) {
	ed := p.editor
	ed.numbers.applyTo(ed.state)
	built := exercise.BuildExercise(*ed.state, ed.prev)
	replace := ed.prev != nil
	p.editor = editorModel{}
	return p, p.save(built, replace)
}

func countOnly(t exercise.RepType) bool {
	switch t {
	case exercise.RepSimple, exercise.RepConcentricOnly, exercise.RepEccentricOnly, exercise.RepExplosive:
		return true
	case exercise.RepHold, exercise.RepTempo:
		return false
	}
	panic(fmt.Sprintf("unknown rep type %q", string(t)))
}

func numbersFrom(s exercise.FormState) numberInputs {
	return numberInputs{
		repCount:    strconv.Itoa(s.SimpleRepCount),
		hold:        strconv.Itoa(s.HoldDuration),
		tempoCount:  strconv.Itoa(s.TempoRepCount),
		eccentric:   strconv.Itoa(s.TempoEccentric),
		pauseBottom: strconv.Itoa(s.TempoPauseBottom),
		concentric:  strconv.Itoa(s.TempoConcentric),
		pauseTop:    strconv.Itoa(s.TempoPauseTop),
	}
}

// applyTo copies the typed numbers into s. Counts and the hold duration that
// do not parse or are zero become 1, tempo phases become 0.
func (n numberInputs) applyTo(s *exercise.FormState) {
	s.SimpleRepCount = positiveOr(n.repCount, 1)
	s.HoldDuration = positiveOr(n.hold, 1)
	s.TempoRepCount = positiveOr(n.tempoCount, 1)
	s.TempoEccentric = atoiOr(n.eccentric, 0)
	s.TempoPauseBottom = atoiOr(n.pauseBottom, 0)
	s.TempoConcentric = atoiOr(n.concentric, 0)
	s.TempoPauseTop = atoiOr(n.pauseTop, 0)
}

func (e editorModel) view(w int) string {
	title := titleStyle.Render(e.title())

	switch e.stage {
	case stageResistanceEntry:
		sub := "Add Resistance"
		if !e.entryNew {
			sub = "Edit Resistance"
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, subtitleStyle.Render(sub), "", e.form.View(),
		))
	case stageDetails:
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, subtitleStyle.Render("Details"), "", e.form.View(),
		))
	}
	return panelStyle.Width(w).Render(e.renderResistances())
}

func (e editorModel) renderResistances() string {
	var rows []string
	rows = append(rows,
		titleStyle.Render(e.title()),
		subtitleStyle.Render("Resistance")+mutedStyle.Render("  ·  name: ")+highlightStyle.Render(e.displayName()),
		"",
	)

	if len(e.state.Resistances) == 0 {
		rows = append(rows, mutedStyle.Render("No resistance added. Press a to add one."))
	}
	for i, r := range e.state.Resistances {
		cursor := "  "
		style := normalItemStyle
		if i == e.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := style.Render(cursor + r.Type.Label())
		if w := strings.TrimSpace(r.Weight); w != "" {
			line += highlightStyle.Render("  " + w + " lbs")
		}
		if r.IsDual {
			line += warningStyle.Render("  (Dual)")
		}
		rows = append(rows, line)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  a: add  enter: edit  d: remove  space: dual  tab: continue  esc: cancel"))
	return strings.Join(rows, "\n")
}

// displayName is the name the exercise will get if submitted now.
func (e editorModel) displayName() string {
	if name := strings.TrimSpace(e.state.Name); name != "" {
		return name
	}
	return exercise.DeriveDefaultName(*e.state)
}

package tui

import (
	"strconv"
	"strings"

	"github.com/sadopc/exlog/internal/exercise"
)

// viewState represents the currently active view.
type viewState int

const (
	viewExercises viewState = iota
	viewSummary
	viewCatalog
)

var viewNames = []string{"Exercises", "Summary", "Catalog"}

// --- Messages ---

type exercisesDataMsg struct {
	exercises []exercise.Exercise
	err       error
}

type exerciseSavedMsg struct {
	exercise exercise.Exercise
	replaced bool
}

type exerciseDeletedMsg struct {
	id   string
	name string
}

type statusMsg struct {
	text    string
	isError bool
}

type exportReadyMsg struct {
	format  string
	content string
}

type clipboardMsg struct {
	err error
}

// --- Helpers ---

// atoiOr parses a non-negative integer typed into a form, returning fallback
// for anything else.
func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// positiveOr is atoiOr for fields where zero is not a usable value.
func positiveOr(s string, fallback int) int {
	if n := atoiOr(s, fallback); n > 0 {
		return n
	}
	return fallback
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/progress"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// progressStep is how far +/- move the demo progress value.
const progressStep = 10.0

// Model is the Bubbletea state of the story catalog.
type Model struct {
	defs       []*component.Definition
	selections map[string]variant.Selection
	themes     *theme.Cycler

	cursor int
	axis   int

	demoValue         float64
	demoIndeterminate bool

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel builds a story catalog over every component in lib.
func NewModel(lib *component.Library, themes *theme.Cycler) Model {
	defs := lib.All()
	selections := make(map[string]variant.Selection, len(defs))
	for _, def := range defs {
		selections[def.Name] = def.Table.Defaults()
	}

	return Model{
		defs:       defs,
		selections: selections,
		themes:     themes,
		demoValue:  40,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted component, or nil for an empty catalog.
func (m Model) Selected() *component.Definition {
	if len(m.defs) == 0 {
		return nil
	}
	return m.defs[m.cursor]
}

// Selection returns the current selection of the highlighted component.
func (m Model) Selection() variant.Selection {
	def := m.Selected()
	if def == nil {
		return nil
	}
	return m.selections[def.Name]
}

// ProgressState returns the demo value shown by progress stories.
func (m Model) ProgressState() progress.State {
	if m.demoIndeterminate {
		return progress.Indeterminate(progress.DefaultMax)
	}
	return progress.New(m.demoValue, progress.DefaultMax)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) focusedAxis() (variant.Axis, bool) {
	def := m.Selected()
	if def == nil {
		return variant.Axis{}, false
	}
	axes := def.Table.Axes()
	if len(axes) == 0 {
		return variant.Axis{}, false
	}
	return axes[m.axis%len(axes)], true
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The first size message marks the first real frame.
		m.themes.Mount()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.axis = 0
		}
	case "down", "j":
		if m.cursor < len(m.defs)-1 {
			m.cursor++
			m.axis = 0
		}
	case "tab":
		if def := m.Selected(); def != nil {
			if n := len(def.Table.Axes()); n > 0 {
				m.axis = (m.axis + 1) % n
			}
		}
	case "right", "l":
		m.stepOption(true)
	case "left", "h":
		m.stepOption(false)
	case "t":
		_, m.err = m.themes.Cycle()
	case "+", "=":
		m.demoIndeterminate = false
		m.demoValue += progressStep
	case "-":
		m.demoIndeterminate = false
		m.demoValue -= progressStep
	case "i":
		m.demoIndeterminate = !m.demoIndeterminate
	}
	return m, nil
}

// stepOption moves the focused axis to its next or previous option. The
// selection map is replaced, not mutated, since models are copied by value.
func (m *Model) stepOption(forward bool) {
	def := m.Selected()
	axis, ok := m.focusedAxis()
	if !ok {
		return
	}

	current := m.selections[def.Name][axis.ID]
	next := axis.Prev(current)
	if forward {
		next = axis.Next(current)
	}

	selections := make(map[string]variant.Selection, len(m.selections))
	for name, sel := range m.selections {
		selections[name] = sel
	}
	selections[def.Name] = selections[def.Name].With(axis.ID, next)
	m.selections = selections
}

func isProgressStory(name string) bool {
	return strings.HasPrefix(name, "progress")
}

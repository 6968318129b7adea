package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	listWidth     = 22
	minClassWidth = 30
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := stylesFor(m.themes.Display())

	themeLabel := m.themes.Display()
	if themeLabel == "" {
		themeLabel = "…"
	} else if m.themes.Current() != themeLabel {
		themeLabel = fmt.Sprintf("%s (%s)", m.themes.Current(), themeLabel)
	}
	header := st.title.Render("stylekit stories") + st.muted.Render("  theme: "+themeLabel)

	if len(m.defs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, st.muted.Render("no components registered"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(st), "  ", m.renderDetail(st))
	sections := []string{header, body}
	if m.err != nil {
		sections = append(sections, st.errorMsg.Render(m.err.Error()))
	}
	sections = append(sections, st.muted.Render("↑/↓ component • tab axis • ←/→ option • t theme • +/-/i progress • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList(st styles) string {
	lines := make([]string, 0, len(m.defs))
	for i, def := range m.defs {
		if i == m.cursor {
			lines = append(lines, st.cursor.Render("› "+def.Name))
			continue
		}
		lines = append(lines, st.item.Render("  "+def.Name))
	}
	return lipgloss.NewStyle().Width(listWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail(st styles) string {
	def := m.Selected()
	sel := m.Selection()

	lines := []string{st.title.Render(fmt.Sprintf("<%s> %s", def.Element, def.Name))}
	if def.Description != "" {
		lines = append(lines, st.muted.Render(def.Description))
	}

	axes := def.Table.Axes()
	if len(axes) > 0 {
		lines = append(lines, st.section.Render("Variants"))
	}
	for i, axis := range axes {
		current := sel[axis.ID]
		if current == "" {
			current = axis.Default
		}

		opts := make([]string, 0, len(axis.Options))
		for _, key := range axis.Keys() {
			if key == current {
				opts = append(opts, st.focused.Render("["+key+"]"))
				continue
			}
			opts = append(opts, st.option.Render(key))
		}

		label := axis.ID
		if i == m.axis%len(axes) {
			label = st.cursor.Render(label)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, strings.Join(opts, " ")))
	}

	lines = append(lines, st.section.Render("Classes"))
	classes, err := def.Classes(sel, "")
	if err != nil {
		lines = append(lines, st.errorMsg.Render(err.Error()))
	} else {
		lines = append(lines, st.classes.Width(m.classWidth()).Render(classes))
	}

	if isProgressStory(def.Name) {
		lines = append(lines, st.section.Render("Preview"), m.ProgressState().Render(m.classWidth()-8))
	}

	return strings.Join(lines, "\n")
}

func (m Model) classWidth() int {
	w := m.width - listWidth - 4
	if w < minClassWidth {
		return minClassWidth
	}
	return w
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

func TestViewHidesThemeUntilMounted(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "stylekit stories")
	assert.Contains(t, view, "theme: …")

	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "theme: light")
}

func TestViewShowsSystemResolution(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, runes("t"), runes("t"))
	assert.Contains(t, m.View(), "theme: system (dark)")
}

func TestViewShowsComponentDetail(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.WindowSizeMsg{Width: 200, Height: 40}, runes("j"), runes("j"), runes("l"))
	view := m.View()

	assert.Contains(t, view, "<button> button")
	assert.Contains(t, view, "[destructive]")
	assert.Contains(t, view, "bg-destructive")
	assert.Contains(t, view, "tab axis")
}

func TestViewRendersProgressPreview(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for m.Selected().Name != "progress" {
		m = press(t, m, runes("j"))
	}
	m = press(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})

	assert.Contains(t, m.View(), "Preview")
	assert.Contains(t, m.View(), "40%")

	m = press(t, m, runes("i"))
	assert.Contains(t, m.View(), "indeterminate")
}

func TestViewEmptyLibrary(t *testing.T) {
	t.Parallel()

	cycler, err := theme.NewCycler()
	require.NoError(t, err)
	m := NewModel(component.NewLibrary(logger.Nop()), cycler)

	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "no components registered")
}

func TestStylesForThemes(t *testing.T) {
	t.Parallel()

	light := stylesFor(theme.Light)
	dark := stylesFor(theme.Dark)
	assert.NotEqual(t, light.title.GetForeground(), dark.title.GetForeground())
	assert.Equal(t, light.title.GetForeground(), stylesFor("").title.GetForeground())
}

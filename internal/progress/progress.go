// Package progress computes the displayed state of a progress bar.
package progress

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// DefaultMax is used when State.Max is zero.
const DefaultMax = 100.0

// Data states exposed to styling, mirroring the bar's lifecycle.
const (
	StateIndeterminate = "indeterminate"
	StateLoading       = "loading"
	StateComplete      = "complete"
)

// State is a progress value. A nil Value means the amount of work is unknown.
type State struct {
	Value *float64
	Max   float64
}

// New returns a determinate state.
func New(value, max float64) State {
	return State{Value: &value, Max: max}
}

// Indeterminate returns a state with no value.
func Indeterminate(max float64) State {
	return State{Max: max}
}

// IsIndeterminate reports whether the value is absent.
func (s State) IsIndeterminate() bool {
	return s.Value == nil
}

// MaxOrDefault returns Max, or DefaultMax when Max is zero.
func (s State) MaxOrDefault() float64 {
	if s.Max == 0 {
		return DefaultMax
	}
	return s.Max
}

// Percent returns round(value/max*100). Values outside [0, max] are not
// clamped. ok is false for an indeterminate state.
func (s State) Percent() (int, bool) {
	if s.Value == nil {
		return 0, false
	}
	// halves round up
	return int(math.Floor(*s.Value/s.MaxOrDefault()*100 + 0.5)), true
}

// DataState returns indeterminate, complete when value equals max, or loading.
func (s State) DataState() string {
	switch {
	case s.Value == nil:
		return StateIndeterminate
	case *s.Value == s.MaxOrDefault():
		return StateComplete
	default:
		return StateLoading
	}
}

// Label is the text shown next to the bar.
func (s State) Label() string {
	pct, ok := s.Percent()
	if !ok {
		return StateIndeterminate
	}
	return fmt.Sprintf("%d%%", pct)
}

var labelStyle = lipgloss.NewStyle().Bold(true)

// Render draws a terminal bar of the given width followed by the label. The
// bar is filled within [0, 1] while the label keeps the unclamped percent.
func (s State) Render(width int) string {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width

	ratio := 0.0
	if pct, ok := s.Percent(); ok {
		ratio = math.Max(0, math.Min(1, float64(pct)/100))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, bar.ViewAs(ratio), " ", labelStyle.Render(s.Label()))
}

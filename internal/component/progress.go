package component

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/stylekit/internal/progress"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// ProgressBar renders a progress track with its indicator. The indicator is
// shifted left by the missing percentage; indeterminate bars carry no value
// attributes.
func ProgressBar(state progress.State, sel variant.Selection, override string) (templ.Component, error) {
	track := Define("progress", "div", ProgressTable)
	indicator := Define("progress-indicator", "div", ProgressIndicatorTable)

	dataState := state.DataState()
	trackAttrs := templ.Attributes{
		"role":          "progressbar",
		"aria-valuemin": 0,
		"aria-valuemax": state.MaxOrDefault(),
		"data-state":    dataState,
		"data-max":      state.MaxOrDefault(),
	}

	indicatorAttrs := templ.Attributes{"data-state": dataState}
	if pct, ok := state.Percent(); ok {
		trackAttrs["aria-valuenow"] = *state.Value
		trackAttrs["data-value"] = *state.Value
		indicatorAttrs["style"] = fmt.Sprintf("transform: translateX(%d%%)", pct-100)
	}

	inner, err := indicator.Render(Props{
		Selection: variant.Selection{"state": dataState},
		Attrs:     indicatorAttrs,
	})
	if err != nil {
		return nil, err
	}
	return track.Render(Props{Selection: sel, Class: override, Attrs: trackAttrs}, inner)
}

package component

import "github.com/alexisbeaulieu97/stylekit/internal/variant"

// sharedToggleAxes are the axes a toggle group hands down to its items.
var sharedToggleAxes = []string{"variant", "size"}

// ToggleGroup carries the variant and size shared by the toggles inside it.
type ToggleGroup struct {
	Orientation string
	Shared      variant.Selection
}

// NewToggleGroup returns a group sharing the given selection.
func NewToggleGroup(shared variant.Selection) ToggleGroup {
	return ToggleGroup{Shared: shared}
}

// Classes resolves the group container classes.
func (g ToggleGroup) Classes(override string) (string, error) {
	var sel variant.Selection
	if g.Orientation != "" {
		sel = variant.Selection{"orientation": g.Orientation}
	}
	return ToggleGroupTable.ResolveString(sel, override)
}

// ItemSelection fills the shared axes of an item selection. A value set on
// the group takes precedence; the item's own value is used otherwise.
func (g ToggleGroup) ItemSelection(own variant.Selection) variant.Selection {
	out := make(variant.Selection, len(own)+len(sharedToggleAxes))
	for k, v := range own {
		out[k] = v
	}
	for _, axis := range sharedToggleAxes {
		if v := g.Shared[axis]; v != "" {
			out[axis] = v
		}
	}
	return out
}

// ItemClasses resolves a toggle inside the group.
func (g ToggleGroup) ItemClasses(own variant.Selection, override string) (string, error) {
	return ToggleTable.ResolveString(g.ItemSelection(own), override)
}

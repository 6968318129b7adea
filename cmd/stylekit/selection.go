package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

func errUnknownComponent(name string) error {
	return fmt.Errorf("unknown component %q", name)
}

// parseSelection turns repeated axis=option flags into a selection. A later
// flag for the same axis replaces an earlier one.
func parseSelection(pairs []string) (variant.Selection, error) {
	sel := make(variant.Selection, len(pairs))
	for _, pair := range pairs {
		axis, option, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("invalid selection %q: expected axis=option", pair)
		}
		sel[axis] = strings.TrimSpace(option)
	}
	return sel, nil
}
